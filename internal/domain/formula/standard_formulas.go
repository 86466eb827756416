package formula

// StandardProductInfo carries the production metadata that accompanies a
// built-in formula: process steps and per-volume time/energy rates used by
// reporting.
type StandardProductInfo struct {
	ProductionSteps  []string
	TimePerUnitHours float64
	EnergyPerUnitKWh float64
}

// StandardFormulas returns the built-in construction-materials formula
// library. These seed the persistence layer on first run and back the
// in-memory catalog used in tests.
func StandardFormulas() []*Formula {
	return []*Formula{
		{
			ProductKey: "Sement M500",
			Category:   CategoryCement,
			Unit:       "qop",
			Lines: []Line{
				{MaterialKey: "Klinker", ProportionPercent: 90, QuantityPerUnit: 45, Unit: "kg"},
				{MaterialKey: "Gips", ProportionPercent: 5, QuantityPerUnit: 2.5, Unit: "kg"},
				{MaterialKey: "Mineral qo'shimchalar", ProportionPercent: 5, QuantityPerUnit: 2.5, Unit: "kg"},
			},
		},
		{
			ProductKey: "Rodbin 12mm",
			Category:   CategoryRebar,
			Unit:       "metr",
			Lines: []Line{
				{MaterialKey: "Temir sutka", ProportionPercent: 95, QuantityPerUnit: 0.844, Unit: "kg"},
				{MaterialKey: "Oksir", ProportionPercent: 3, QuantityPerUnit: 0.027, Unit: "kg"},
				{MaterialKey: "Karbon", ProportionPercent: 2, QuantityPerUnit: 0.018, Unit: "kg"},
			},
		},
		{
			ProductKey: "Kafel 30x30",
			Category:   CategoryTile,
			Unit:       "dona",
			Lines: []Line{
				{MaterialKey: "Gil", ProportionPercent: 60, QuantityPerUnit: 2.4, Unit: "kg"},
				{MaterialKey: "Kvart qumi", ProportionPercent: 30, QuantityPerUnit: 1.2, Unit: "kg"},
				{MaterialKey: "Rang beruvchi", ProportionPercent: 5, QuantityPerUnit: 0.2, Unit: "kg"},
				{MaterialKey: "Kimyoviy qo'shimchalar", ProportionPercent: 5, QuantityPerUnit: 0.2, Unit: "kg"},
			},
		},
		{
			ProductKey: "Nalinoy pol",
			Category:   CategoryFlooring,
			Unit:       "m2",
			Lines: []Line{
				{MaterialKey: "Polivinilxlorid (PVC)", ProportionPercent: 70, QuantityPerUnit: 2.1, Unit: "kg"},
				{MaterialKey: "Plastifikatorlar", ProportionPercent: 15, QuantityPerUnit: 0.45, Unit: "kg"},
				{MaterialKey: "To'ldirgichlar", ProportionPercent: 10, QuantityPerUnit: 0.3, Unit: "kg"},
				{MaterialKey: "Rang beruvchi", ProportionPercent: 5, QuantityPerUnit: 0.15, Unit: "kg"},
			},
		},
		{
			ProductKey: "Gips qop 25kg",
			Category:   CategoryGypsum,
			Unit:       "qop",
			Lines: []Line{
				{MaterialKey: "Gips toshi", ProportionPercent: 90, QuantityPerUnit: 22.5, Unit: "kg"},
				{MaterialKey: "Suvoq qo'shimchalari", ProportionPercent: 10, QuantityPerUnit: 2.5, Unit: "kg"},
			},
		},
		{
			ProductKey: "Beton M300",
			Category:   CategoryConcrete,
			Unit:       "m3",
			Lines: []Line{
				{MaterialKey: "Sement", ProportionPercent: 15, QuantityPerUnit: 360, Unit: "kg"},
				{MaterialKey: "Qum", ProportionPercent: 30, QuantityPerUnit: 720, Unit: "kg"},
				{MaterialKey: "Shag'al", ProportionPercent: 45, QuantityPerUnit: 1080, Unit: "kg"},
				{MaterialKey: "Suv", ProportionPercent: 10, QuantityPerUnit: 180, Unit: "liter"},
			},
		},
	}
}

// StandardProductInfos maps product keys to their production metadata.
func StandardProductInfos() map[string]StandardProductInfo {
	return map[string]StandardProductInfo{
		"Sement M500": {
			ProductionSteps: []string{
				"Aralashtirish",
				"Maydalash (sharli tegirmon)",
				"Sinfga ajratish",
				"Qadoqlash",
			},
			TimePerUnitHours: 0.125, // 2.5 h/ton at 50 kg per bag
			EnergyPerUnitKWh: 5.5,   // 110 kWh/ton
		},
		"Rodbin 12mm": {
			ProductionSteps: []string{
				"Qizdirish (1200-1300°C)",
				"Prolkatka",
				"Shakllantirish",
				"Sovutish",
				"Kesish va birlashtirish",
			},
			TimePerUnitHours: 0.00133,
			EnergyPerUnitKWh: 0.4,
		},
		"Kafel 30x30": {
			ProductionSteps: []string{
				"Xom ashyo aralashtirish",
				"Shakllantirish (presslash)",
				"Quritish",
				"Pishirish (1050-1150°C)",
				"Kontrol va paketlash",
			},
			TimePerUnitHours: 0.048, // 48 h per 1000 pieces
			EnergyPerUnitKWh: 0.85,
		},
		"Nalinoy pol": {
			ProductionSteps: []string{
				"Xom ashyo aralashtirish",
				"Ekstruziya yoki kalendrlash",
				"Presslash",
				"Kesish va birlashtirish",
				"Qadoqlash",
			},
			TimePerUnitHours: 0.08, // 8 h per 100 m2
			EnergyPerUnitKWh: 1.8,
		},
		"Gips qop 25kg": {
			ProductionSteps: []string{
				"Maydalash",
				"Quritish",
				"Dehidratatsiya",
				"Aralashtirish",
				"Qadoqlash",
			},
			TimePerUnitHours: 0.03, // 1.2 h/ton at 25 kg per bag
			EnergyPerUnitKWh: 2.125,
		},
		"Beton M300": {
			ProductionSteps: []string{
				"Xom ashyo tayyorlash",
				"Aralashtirish (beton aralashgich)",
				"Transport qilish",
				"Qadoqlash yoki to'g'ridan-to'g'ri quyish",
			},
			TimePerUnitHours: 0.25,
			EnergyPerUnitKWh: 15,
		},
	}
}

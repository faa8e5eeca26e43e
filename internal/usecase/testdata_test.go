package usecase

import "github.com/consumesafe/backend/internal/domain"

// testCatalog returns a small fixed catalog in a deliberate order: several
// ranking rules tie-break on catalog order, so tests depend on this layout.
func testCatalog() []domain.ProductRecord {
	return []domain.ProductRecord{
		{
			ID: "1", FlaggedName: "Coca-Cola", Brand: "Coca-Cola Company",
			Category: "Beverages", Reason: "Soutien financier",
			Intensity: domain.IntensityHigh,
			AlternativeName: "Boga", AlternativeBrand: "SFBT",
		},
		{
			ID: "2", FlaggedName: "Pepsi", Brand: "PepsiCo",
			Category: "Beverages", Reason: "Investissements",
			Intensity: domain.IntensityHigh,
			AlternativeName: "Safia Cola", AlternativeBrand: "Safia",
		},
		{
			ID: "3", FlaggedName: "Fanta", Brand: "Coca-Cola Company",
			Category: "Beverages", Reason: "Filiale",
			Intensity: domain.IntensityMedium,
			AlternativeName: "", AlternativeBrand: "",
		},
		{
			ID: "4", FlaggedName: "Ariel", Brand: "Procter & Gamble",
			Category: "Cleaning", Reason: "Soutien économique",
			Intensity: domain.IntensityMedium,
			AlternativeName: "Nadhif", AlternativeBrand: "Sodet",
		},
		{
			ID: "5", FlaggedName: "L'Oreal Paris", Brand: "L'Oreal",
			Category: "Cosmetics", Reason: "Partenariats",
			Intensity: domain.IntensityLow,
			AlternativeName: "Zaytouna Beauty", AlternativeBrand: "Zaytouna",
		},
	}
}

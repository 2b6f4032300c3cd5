package service

import (
	"fmt"

	"github.com/darkskyoregon/sqm-backend-go/internal/category"
	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

// buildDetails formats the per-category detail block for every highlighted
// site present in the table. Stale names simply produce no block.
func buildDetails(key category.Key, rows []models.MeasurementRow, highlighted map[string]bool) []models.SiteDetail {
	if len(highlighted) == 0 {
		return nil
	}

	var details []models.SiteDetail
	for _, row := range rows {
		if !highlighted[row.SiteName] {
			continue
		}
		details = append(details, siteDetail(key, row))
	}
	return details
}

func siteDetail(key category.Key, row models.MeasurementRow) models.SiteDetail {
	detail := models.SiteDetail{SiteName: row.SiteName}

	switch key {
	case category.ClearNightsBrightness:
		if row.DarkSkyCertified {
			detail.Badges = append(detail.Badges, "Dark Sky Certified")
		}
		if row.DarkSkyQualified && !row.DarkSkyCertified {
			detail.Badges = append(detail.Badges, "Dark Sky Qualified")
		}
		addLine(&detail, row, models.ColXBrighter, "%.2f-times brighter than the darkest Night Sky")
		addLine(&detail, row, models.ColBortleLevel, "Bortle level: %.0f")
		addLine(&detail, row, models.ColMedianBrightness, "Median Night Sky Brightness: %.2f mag/arcsec²")
		addLine(&detail, row, models.ColFluxRatio, "Flux Ratio: %.2f")

	case category.CloudyNightsBrightness:
		addLine(&detail, row, models.ColXBrighter, "%.2f-times brighter than the darkest Night Sky")
		addLine(&detail, row, models.ColMedianBrightness, "Median Night Sky Brightness: %.2f mag/arcsec²")
		addLine(&detail, row, models.ColFluxRatio, "Flux Ratio: %.2f")

	case category.LongTermTrends:
		addLine(&detail, row, models.ColTrendRate, "Rate of Change in Night Sky Brightness compared to a certified Dark Sky Park: %.2f")
		addLine(&detail, row, models.ColRegressionSlope, "Trendline Slope: %.2f")
		addLine(&detail, row, models.ColPercentChangePerYear, "Percentage Change in Night Sky Brightness per year: %.2f%%")
		addLine(&detail, row, models.ColYearsOfData, "Number of Years of Data: %.0f")

	case category.MilkyWayVisibility:
		addLine(&detail, row, models.ColRatioIndex, "Ratio Index: %.2f")
		addLine(&detail, row, models.ColDifferenceIndex, "Difference Index: %.2f")

	case category.PercentClearNights:
		addLine(&detail, row, models.ColPercentClearNights, "Percentage of Clear (no clouds) nights: %.2f%%")
	}

	return detail
}

func addLine(detail *models.SiteDetail, row models.MeasurementRow, col models.Column, format string) {
	if v, ok := row.Metric(col); ok {
		detail.Lines = append(detail.Lines, fmt.Sprintf(format, v))
	}
}

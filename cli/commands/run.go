package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/climasql/analysis"
	"github.com/satishbabariya/climasql/cli/internal/config"
	"github.com/satishbabariya/climasql/cli/internal/ui"
	"github.com/satishbabariya/climasql/dataset"
	"github.com/satishbabariya/climasql/reports"
	"github.com/satishbabariya/climasql/runtime/client"
)

// Report section titles, printed in fixed order
const (
	averagesTitle    = "Average Temperature & Humidity by City"
	ranksTitle       = "Window Function: Temperature Rank per Date"
	hottestTitle     = "CTE: Hottest City per Date"
	fullTableTitle   = "Full climate_data Table"
	correlationTitle = "Correlation Matrix between Temperature & Humidity"
)

// headRows is how many rows of the full table the report shows
const headRows = 5

// runDemo seeds the database and prints the four reports
func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		cfg.Provider = provider
	}
	if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
		cfg.DSN = dsn
	}

	c, err := client.NewClient(cfg.Provider, cfg.DSN)
	if err != nil {
		return err
	}
	if err := c.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", cfg.Provider, err)
	}
	// The handle is released even when a report fails
	defer c.Disconnect(context.Background())

	if err := dataset.Load(ctx, c); err != nil {
		return err
	}

	if err := printCityAverages(ctx, c); err != nil {
		return err
	}
	if err := printTemperatureRanks(ctx, c); err != nil {
		return err
	}
	if err := printHottestPerDate(ctx, c); err != nil {
		return err
	}
	return printCorrelation(ctx, c)
}

func printCityAverages(ctx context.Context, c *client.Client) error {
	averages, err := reports.CityAverages(ctx, c)
	if err != nil {
		return err
	}
	table, err := renderCityAverages(averages)
	if err != nil {
		return err
	}
	ui.PrintSection(averagesTitle, table)
	return nil
}

func printTemperatureRanks(ctx context.Context, c *client.Client) error {
	ranked, err := reports.TemperatureRanks(ctx, c)
	if err != nil {
		return err
	}
	table, err := renderRankedReadings(ranked)
	if err != nil {
		return err
	}
	ui.PrintSection(ranksTitle, table)
	return nil
}

func printHottestPerDate(ctx context.Context, c *client.Client) error {
	hottest, err := reports.HottestPerDate(ctx, c)
	if err != nil {
		return err
	}
	table, err := renderRankedReadings(hottest)
	if err != nil {
		return err
	}
	ui.PrintSection(hottestTitle, table)
	return nil
}

func printCorrelation(ctx context.Context, c *client.Client) error {
	readings, err := reports.AllReadings(ctx, c)
	if err != nil {
		return err
	}
	frame := analysis.FromReadings(readings)

	head, err := renderFrameHead(frame, headRows)
	if err != nil {
		return err
	}
	ui.PrintSection(fullTableTitle, head)

	matrix, err := analysis.CorrelationMatrix(frame, "temperature", "humidity")
	if err != nil {
		return err
	}
	table, err := renderCorrMatrix(matrix)
	if err != nil {
		return err
	}
	ui.PrintSection(correlationTitle, table)
	return nil
}

func renderCityAverages(averages []reports.CityAverage) (string, error) {
	rows := make([][]string, len(averages))
	for i, avg := range averages {
		rows[i] = []string{avg.City, formatMean(avg.AvgTemperature), formatMean(avg.AvgHumidity)}
	}
	return ui.RenderTable([]string{"city", "avg_temp", "avg_humidity"}, rows)
}

func renderRankedReadings(ranked []reports.RankedReading) (string, error) {
	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		rows[i] = []string{r.City, r.Date, formatReading(r.Temperature), strconv.FormatInt(r.Rank, 10)}
	}
	return ui.RenderTable([]string{"city", "reading_date", "temperature", "temp_rank"}, rows)
}

func renderFrameHead(frame *analysis.Frame, n int) (string, error) {
	return ui.RenderTable(frame.Columns(), frame.Head(n).Records())
}

func renderCorrMatrix(matrix *analysis.CorrMatrix) (string, error) {
	headers := append([]string{""}, matrix.Columns...)
	rows := make([][]string, len(matrix.Columns))
	for i, col := range matrix.Columns {
		row := []string{col}
		for j := range matrix.Columns {
			row = append(row, formatMean(matrix.At(i, j)))
		}
		rows[i] = row
	}
	return ui.RenderTable(headers, rows)
}

// formatMean renders computed values (means, correlations) with fixed precision
func formatMean(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// formatReading renders raw readings, which carry one decimal place
func formatReading(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func printError(err error) {
	ui.PrintError("%v", err)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/airport"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
)

func newAirportsCmd() *cobra.Command {
	var (
		dataPath string
		exclude  string
		country  string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "airports [query]",
		Short: "Search airports the way the autocomplete does",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := airport.NewDirectory(airport.NewFileSource(dataPath))
			if err := dir.Load(cmd.Context()); err != nil {
				return err
			}

			var (
				airports []entity.Airport
				err      error
			)
			if cmd.Flags().Changed("country") {
				airports, err = dir.ByCountry(country)
			} else {
				airports, err = dir.Autocomplete(strings.Join(args, " "), exclude, limit)
			}
			if err != nil {
				return err
			}

			if len(airports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Sin coincidencias")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "IATA", "Ciudad", "Aeropuerto", "País"})
			for _, a := range airports {
				t.AppendRow(table.Row{a.ID, a.IATA, a.City, a.Name, a.Country})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", defaultDataPath, "airport JSON document")
	cmd.Flags().StringVar(&exclude, "exclude", "", "airport id to leave out")
	cmd.Flags().StringVar(&country, "country", "", "list every airport of a country instead")
	cmd.Flags().IntVar(&limit, "limit", airport.DefaultLimit, "maximum matches")
	return cmd
}

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/airport"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/provider"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/searchform"
	"github.com/shandysiswandi/goamviajes/internal/amviajes/usecase"
)

type searchFlags struct {
	dataPath   string
	from       string
	to         string
	depart     string
	ret        string
	oneWay     bool
	swap       bool
	adults     int
	children   int
	infants    int
	seed       uint64
	sort       string
	user       string
	maxResults int
}

func newSearchCmd() *cobra.Command {
	f := searchFlags{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Fill the search form and list generated flights",
		Example: `  amviajes search --from COR --to AEP --depart 2027-03-10 --one-way
  amviajes search --from 1 --to MAD --depart 2027-05-01 --return 2027-05-20 --adults 2 --seed 7 --sort hora-asc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := airport.NewDirectory(airport.NewFileSource(f.dataPath))
			if err := dir.Load(cmd.Context()); err != nil {
				return err
			}

			form, err := fillForm(dir, f)
			if err != nil {
				return err
			}

			query, err := form.Submit(f.user)
			if err != nil {
				return err
			}

			var rng provider.Rand
			if f.seed != 0 {
				rng = provider.NewSeededRand(f.seed)
			}
			itineraries, err := provider.NewMockProvider(rng, nil).Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vuelos de %s a %s, pasajeros: %s\n",
				searchform.DisplayText(query.Origin), searchform.DisplayText(query.Destination),
				usecase.PassengerText(&query.Passengers))

			sorted := usecase.SortItineraries(itineraries, f.sort)
			if len(sorted) == 0 {
				fmt.Fprintln(out, "No hay pasajes disponibles")
				return nil
			}
			if f.maxResults > 0 && len(sorted) > f.maxResults {
				sorted = sorted[:f.maxResults]
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Aerolínea", "Fecha ida", "Hora ida", "Fecha vuelta", "Hora vuelta", "Por pasajero", "Total"})
			for _, it := range sorted {
				t.AppendRow(table.Row{
					it.Airline,
					it.DepartDate,
					it.DepartTime,
					deref(it.ReturnDate),
					deref(it.ReturnTime),
					usecase.FormatUSD(it.PricePerPassenger),
					usecase.FormatUSD(it.TotalPrice),
				})
			}
			t.Render()
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.dataPath, "data", defaultDataPath, "airport JSON document")
	fl.StringVar(&f.from, "from", "", "origin airport id or IATA code")
	fl.StringVar(&f.to, "to", "", "destination airport id or IATA code")
	fl.StringVar(&f.depart, "depart", "", "departure date, YYYY-MM-DD")
	fl.StringVar(&f.ret, "return", "", "return date, YYYY-MM-DD")
	fl.BoolVar(&f.oneWay, "one-way", false, "one-way trip")
	fl.BoolVar(&f.swap, "swap", false, "swap origin and destination")
	fl.IntVar(&f.adults, "adults", 1, "adults")
	fl.IntVar(&f.children, "children", 0, "children")
	fl.IntVar(&f.infants, "infants", 0, "infants")
	fl.Uint64Var(&f.seed, "seed", 0, "seed for reproducible results, 0 uses crypto randomness")
	fl.StringVar(&f.sort, "sort", usecase.DefaultSort, "price-asc, price-desc, time-asc or time-desc")
	fl.StringVar(&f.user, "user", "prueba", "username the search is made as")
	fl.IntVar(&f.maxResults, "max", usecase.MaxResults, "results to show, 0 shows all")
	return cmd
}

func fillForm(dir *airport.Directory, f searchFlags) (*searchform.Form, error) {
	form := searchform.New(searchform.Options{})

	origin, err := resolveAirport(dir, f.from)
	if err != nil {
		return nil, err
	}
	destination, err := resolveAirport(dir, f.to)
	if err != nil {
		return nil, err
	}
	form.SetRoute(origin, destination)
	if f.swap {
		form.Swap()
	}

	form.SetOneWay(f.oneWay)
	if f.depart != "" {
		d, err := time.Parse(entity.DateLayout, f.depart)
		if err != nil {
			return nil, fmt.Errorf("invalid --depart: %w", err)
		}
		form.SetDepartDate(d)
	}
	if f.ret != "" {
		d, err := time.Parse(entity.DateLayout, f.ret)
		if err != nil {
			return nil, fmt.Errorf("invalid --return: %w", err)
		}
		if err := form.SetReturnDate(d); err != nil {
			return nil, err
		}
	}

	form.Passengers().Set(entity.PassengerCounts{Adults: f.adults, Children: f.children, Infants: f.infants})
	return form, nil
}

// resolveAirport accepts an airport id or an IATA code. An empty ref leaves
// the field unset.
func resolveAirport(dir *airport.Directory, ref string) (*entity.Airport, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}

	a, err := dir.ByID(ref)
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, airport.ErrNotFound) {
		return nil, err
	}

	all, err := dir.All()
	if err != nil {
		return nil, err
	}
	for _, candidate := range all {
		if strings.EqualFold(candidate.IATA, ref) {
			return &candidate, nil
		}
	}
	return nil, fmt.Errorf("airport %q not found", ref)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

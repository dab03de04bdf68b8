package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"natal-position-service/internal/api/dto"
	"natal-position-service/internal/app"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/services"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func chartCmd(st *cliState) *cobra.Command {
	var date, clock, city, country string
	var lat, lon float64
	var asJSON bool

	c := &cobra.Command{
		Use:   "chart",
		Short: "Compute the sign placements of the seven classical bodies",
		Example: "  natalctl chart --date 1990-01-01 --time 12:00 --lat -30.0346 --lon -51.2177\n" +
			"  natalctl chart --date 1990-01-01 --time 12:00 --city \"Porto Alegre\"",
		RunE: func(cmd *cobra.Command, _ []string) error {
			instant, err := dto.ParseInstant(date, clock)
			if err != nil {
				return err
			}

			components, err := app.Build(cmd.Context(), st.cfg)
			if err != nil {
				return err
			}
			defer components.Close()

			req := services.ChartRequest{Instant: instant}
			var placeName string

			latSet, lonSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
			switch {
			case latSet && lonSet:
				req.Location = domain.GeoCoordinate{Lat: lat, Lon: lon}
			case latSet || lonSet:
				return errors.New("--lat and --lon must be given together")
			case city != "":
				if country == "" {
					country = st.cfg.DefaultCountry
				}
				place, err := components.Geocoder.Geocode(cmd.Context(), domain.PlaceQuery{City: city, Country: country})
				if err != nil {
					return err
				}
				req.Location, placeName = place.Coordinate, place.Name
			default:
				return errors.New("either --lat/--lon or --city is required")
			}

			chart, err := services.CalculateChart(cmd.Context(), req, components.Provider)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dto.NewChartResponse(chart, placeName))
			}
			return printChart(cmd.OutOrStdout(), chart, placeName)
		},
	}

	c.Flags().StringVar(&date, "date", "", "birth date, YYYY-MM-DD")
	c.Flags().StringVar(&clock, "time", "", "local clock time, HH:MM[:SS]")
	c.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees")
	c.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees")
	c.Flags().StringVar(&city, "city", "", "birth city, geocoded when --lat/--lon are absent")
	c.Flags().StringVar(&country, "country", "", "country of --city (default from DEFAULT_COUNTRY)")
	c.Flags().BoolVar(&asJSON, "json", false, "print the chart as JSON")

	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("time")
	return c
}

func printChart(w io.Writer, chart domain.NatalChart, placeName string) error {
	loc := chart.Location()
	if placeName != "" {
		fmt.Fprintf(w, "Local: %s (%.4f, %.4f)\n", placeName, loc.Lat, loc.Lon)
	} else {
		fmt.Fprintf(w, "Local: %.4f, %.4f\n", loc.Lat, loc.Lon)
	}
	fmt.Fprintf(w, "Dia juliano: %.5f\n\n", float64(chart.JulianDay()))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range chart.Placements() {
		if p.Failed() {
			fmt.Fprintf(tw, "%s\t%s\t%v\n", p.Body.Name(), p.Sign, p.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f°\t(%.2f°)\n", p.Body.Name(), p.Sign, p.RoundedDegree(), p.RoundedLongitude())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if chart.Degraded() {
		fmt.Fprintln(w, "\nephemeris unavailable: every position failed")
	}
	return nil
}

// Package render prints catalog pages as aligned text tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/meetupaws/travel_catalog/internal/model"
)

func Hotels(w io.Writer, r model.HotelResponse) error {
	if r.IsEmpty() {
		_, err := fmt.Fprintln(w, "No hotels found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tROOMS LEFT\tPRICE\tRATING")
	for _, h := range r.Items() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\t%s\t%s\n",
			h.ID, h.Name, h.Location, h.RemainingRooms, h.TotalRooms, orDash(h.Price.String()), h.Rating)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return footer(w, r.Data.CurrentPage, r.Data.LastPage, r.Data.Total)
}

func Flights(w io.Writer, r model.FlightResponse) error {
	if r.IsEmpty() {
		_, err := fmt.Fprintln(w, "No flights found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFLIGHT\tAIRLINE\tROUTE\tDEPARTS\tSEATS LEFT\tCLASS\tPRICE\tSTATUS")
	for _, f := range r.Items() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s-%s\t%s\t%d/%d\t%s\t%s\t%s\n",
			f.ID, f.FlightNumber, f.Airline, f.DepartureAirport, f.ArrivalAirport, f.DepartureTime,
			f.AvailableSeats, f.TotalSeats, orDash(string(f.TravelClass)), orDash(f.Price.String()),
			strings.ToUpper(string(f.Status)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return footer(w, r.Data.CurrentPage, r.Data.LastPage, r.Data.Total)
}

func footer(w io.Writer, page, lastPage, total int) error {
	_, err := fmt.Fprintf(w, "page %d of %d, %d total\n", page, lastPage, total)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

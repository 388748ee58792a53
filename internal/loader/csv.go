// Package loader ingests route datasets into a flight network. The dataset
// is a comma-separated file with one flight per row:
//
//	airline_iata,airline_name,source_iata,source_city,destination_iata,
//	destination_city,route,stops,aircraft_type,aircraft_capacity,price_usd
//
// Airports are registered on first sight from the IATA and city columns.
// Malformed rows are skipped, never fatal: a bad row in a large dataset
// must not abort the whole load.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightnet/internal/network"
)

const minFields = 11

const (
	colSourceIATA = 2
	colSourceCity = 3
	colDestIATA   = 4
	colDestCity   = 5
	colCapacity   = 9
	colPrice      = 10
)

// Result reports what a load produced.
type Result struct {
	Airports int // airports registered
	Flights  int // flights added
	Skipped  int // rows dropped as malformed or rejected by the network
}

// LoadRoutes reads the dataset at path into the network.
func LoadRoutes(net *network.Network, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open routes file: %w", err)
	}
	defer f.Close()
	return ReadRoutes(net, f)
}

// ReadRoutes parses the dataset from r into the network. Flight codes are
// generated sequentially since the dataset carries none.
func ReadRoutes(net *network.Network, r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row width is validated per record

	var res Result
	header := true
	flightCounter := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Skipped++
			continue
		}
		if header {
			header = false
			continue
		}
		if len(record) < minFields {
			res.Skipped++
			continue
		}

		sourceIATA := strings.TrimSpace(record[colSourceIATA])
		sourceCity := strings.TrimSpace(record[colSourceCity])
		destIATA := strings.TrimSpace(record[colDestIATA])
		destCity := strings.TrimSpace(record[colDestCity])

		if !net.HasAirport(sourceIATA) {
			if err := net.AddAirport(sourceIATA, sourceCity+" Airport", sourceCity); err != nil {
				res.Skipped++
				continue
			}
			res.Airports++
		}
		if !net.HasAirport(destIATA) {
			if err := net.AddAirport(destIATA, destCity+" Airport", destCity); err != nil {
				res.Skipped++
				continue
			}
			res.Airports++
		}

		capacity, err := strconv.Atoi(strings.TrimSpace(record[colCapacity]))
		if err != nil {
			res.Skipped++
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[colPrice]), 64)
		if err != nil {
			res.Skipped++
			continue
		}

		code := fmt.Sprintf("FL%05d", flightCounter)
		if _, err := net.AddFlight(code, sourceIATA, destIATA, capacity, price); err != nil {
			res.Skipped++
			continue
		}
		flightCounter++
		res.Flights++
	}

	return res, nil
}

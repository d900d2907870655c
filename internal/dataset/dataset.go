// Package dataset loads the mobility table once at startup and derives the
// time index and category lists the dashboard controls are built from.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/zakhtar/go-mobility-map/internal/models"
)

// Column names in the source file. The upstream export owns these names, so
// they are matched exactly rather than normalized.
const (
	colDay         = "Day"
	colHours       = "Hours"
	colSource      = "Source Category"
	colDestination = "Destination Category"
	colOriginLat   = "y0_shifted"
	colOriginLon   = "x0_shifted"
	colDestLat     = "y1_shifted"
	colDestLon     = "x1_shifted"
	colBaseline    = "Daily Baseline: People Moving"
	colCrisis      = "Crisis: People Moving"
)

// timestampLayout combines the Day and Hours columns,
// e.g. "April 1, 2020" + "00:00". Timestamps are naive; they parse as UTC.
const timestampLayout = "January 2, 2006 15:04"

// ErrMalformedTimestamp reports a Day/Hours pair that does not match the
// expected layout. The whole load fails rather than skipping the row: the
// time slider needs a consistent domain.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// Dataset is the immutable in-memory view of the mobility table. It is
// built once at process start and shared read-only from then on.
type Dataset struct {
	Records               []models.MobilityRecord // file order, never re-sorted
	Times                 TimeIndex
	SourceCategories      []string // distinct, first-appearance order
	DestinationCategories []string
}

// Load parses the mobility CSV at path. Any problem (missing file, missing
// column, malformed timestamp or numeric cell) fails the load; the process
// should not start on partial data.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mobility data: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading mobility data: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("mobility data %s has no data rows", path)
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Records: make([]models.MobilityRecord, 0, len(rows)-1)}
	seenSource := make(map[string]bool)
	seenDest := make(map[string]bool)
	seenTime := make(map[time.Time]bool)
	var times []time.Time

	for i, row := range rows[1:] {
		rec, err := cols.record(row)
		if err != nil {
			return nil, fmt.Errorf("mobility data row %d: %w", i+2, err)
		}
		ds.Records = append(ds.Records, rec)

		if !seenSource[rec.SourceCategory] {
			seenSource[rec.SourceCategory] = true
			ds.SourceCategories = append(ds.SourceCategories, rec.SourceCategory)
		}
		if !seenDest[rec.DestinationCategory] {
			seenDest[rec.DestinationCategory] = true
			ds.DestinationCategories = append(ds.DestinationCategories, rec.DestinationCategory)
		}
		if !seenTime[rec.Timestamp] {
			seenTime[rec.Timestamp] = true
			times = append(times, rec.Timestamp)
		}
	}

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	ds.Times = NewTimeIndex(times)

	return ds, nil
}

// Bounds is the bounding box over every origin and destination point.
type Bounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

func (d *Dataset) Bounds() Bounds {
	if len(d.Records) == 0 {
		return Bounds{}
	}
	first := d.Records[0].Origin()
	b := Bounds{MinLat: first.Lat, MinLon: first.Lng, MaxLat: first.Lat, MaxLon: first.Lng}
	for _, r := range d.Records {
		for _, p := range []models.LatLng{r.Origin(), r.Destination()} {
			if p.Lat < b.MinLat {
				b.MinLat = p.Lat
			}
			if p.Lat > b.MaxLat {
				b.MaxLat = p.Lat
			}
			if p.Lng < b.MinLon {
				b.MinLon = p.Lng
			}
			if p.Lng > b.MaxLon {
				b.MaxLon = p.Lng
			}
		}
	}
	return b
}

type columns struct {
	day, hours           int
	source, destination  int
	originLat, originLon int
	destLat, destLon     int
	baseline, crisis     int
}

func resolveColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}

	var missing error
	lookup := func(name string) int {
		i, ok := pos[name]
		if !ok && missing == nil {
			missing = fmt.Errorf("mobility data missing column %q", name)
		}
		return i
	}

	c := columns{
		day:         lookup(colDay),
		hours:       lookup(colHours),
		source:      lookup(colSource),
		destination: lookup(colDestination),
		originLat:   lookup(colOriginLat),
		originLon:   lookup(colOriginLon),
		destLat:     lookup(colDestLat),
		destLon:     lookup(colDestLon),
		baseline:    lookup(colBaseline),
		crisis:      lookup(colCrisis),
	}
	return c, missing
}

func (c columns) record(row []string) (models.MobilityRecord, error) {
	ts, err := time.Parse(timestampLayout, row[c.day]+" "+row[c.hours])
	if err != nil {
		return models.MobilityRecord{}, fmt.Errorf("%w: %q %q", ErrMalformedTimestamp, row[c.day], row[c.hours])
	}

	rec := models.MobilityRecord{
		SourceCategory:      row[c.source],
		DestinationCategory: row[c.destination],
		Timestamp:           ts,
	}

	for _, f := range []struct {
		col  int
		name string
		dst  *float64
	}{
		{c.originLat, colOriginLat, &rec.OriginLat},
		{c.originLon, colOriginLon, &rec.OriginLon},
		{c.destLat, colDestLat, &rec.DestLat},
		{c.destLon, colDestLon, &rec.DestLon},
		{c.baseline, colBaseline, &rec.BaselineCount},
		{c.crisis, colCrisis, &rec.CrisisCount},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[f.col]), 64)
		if err != nil {
			return models.MobilityRecord{}, fmt.Errorf("column %q: %w", f.name, err)
		}
		*f.dst = v
	}

	return rec, nil
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTravelDatesUnparseableCandidateKeepsSlot(t *testing.T) {
	// The first candidate has no valid reading under any layout; the next
	// two candidates fill both slots.
	text := "Departure 13/40/2024 then 01/02/2024 returning 03/04/2024"

	departure, arrival := ExtractTravelDates(text)

	require.NotNil(t, departure)
	require.NotNil(t, arrival)
	assert.Equal(t, "2024-02-01", departure.Format("2006-01-02"))
	assert.Equal(t, "2024-04-03", arrival.Format("2006-01-02"))
}

func TestExtractTravelDatesSingleCandidate(t *testing.T) {
	departure, arrival := ExtractTravelDates("leaving on 05/09/2026")

	require.NotNil(t, departure)
	assert.Equal(t, "2026-09-05", departure.Format("2006-01-02"))
	assert.Nil(t, arrival)
}

func TestExtractTravelDatesYearFirstShape(t *testing.T) {
	departure, _ := ExtractTravelDates("booking confirmed for 2024/05/06")

	require.NotNil(t, departure)
	assert.Equal(t, "2024-05-06", departure.Format("2006-01-02"))
}

func TestExtractTravelDatesMonthAbbreviation(t *testing.T) {
	departure, arrival := ExtractTravelDates("from 15 JUN 2024 to 28 JUN 2024")

	require.NotNil(t, departure)
	require.NotNil(t, arrival)
	assert.Equal(t, "2024-06-15", departure.Format("2006-01-02"))
	assert.Equal(t, "2024-06-28", arrival.Format("2006-01-02"))
}

func TestExtractTravelDatesShapeOrderBeforeDocumentOrder(t *testing.T) {
	// A year-first date earlier in the document still ranks behind any
	// day-first match because shapes are scanned in a fixed order.
	departure, arrival := ExtractTravelDates("issued 2024/01/05, valid from 10/11/2024")

	require.NotNil(t, departure)
	require.NotNil(t, arrival)
	assert.Equal(t, "2024-11-10", departure.Format("2006-01-02"))
	assert.Equal(t, "2024-01-05", arrival.Format("2006-01-02"))
}

func TestExtractTravelDatesDashSeparators(t *testing.T) {
	departure, _ := ExtractTravelDates("stamp 01-02-2024")

	require.NotNil(t, departure)
	assert.Equal(t, "2024-02-01", departure.Format("2006-01-02"))
}

func TestExtractTravelDatesSkipsLabeledLines(t *testing.T) {
	text := "DATE OF BIRTH: 15/06/1990\nEXPIRY: 15/06/2030\nDOB 01/01/2000"

	departure, arrival := ExtractTravelDates(text)

	assert.Nil(t, departure)
	assert.Nil(t, arrival)
}

func TestExtractTravelDatesNoCandidates(t *testing.T) {
	departure, arrival := ExtractTravelDates("no dates in this text")

	assert.Nil(t, departure)
	assert.Nil(t, arrival)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLabelIndex map[string]int

func (f fakeLabelIndex) ProductIndex(label string) (int, bool) {
	i, ok := f[label]
	return i, ok
}

func TestParseGenes_Simple(t *testing.T) {
	idx := fakeLabelIndex{"A": 0, "B": 1, "D": 3}
	genes, err := parseGenes("D:15,A:28,B:2", idx, false)
	require.NoError(t, err)
	require.Len(t, genes, 3)
	assert.Equal(t, 3, genes[0].ProductID)
	assert.Equal(t, 15, genes[0].NumBatches)
	assert.Equal(t, -1, genes[0].USPSuiteID)
	assert.Equal(t, 0, genes[1].ProductID)
	assert.Equal(t, 1, genes[2].ProductID)
}

func TestParseGenes_MultiSuite(t *testing.T) {
	idx := fakeLabelIndex{"A": 0, "B": 1}
	genes, err := parseGenes("A:4:0,B:3:1", idx, true)
	require.NoError(t, err)
	require.Len(t, genes, 2)
	assert.Equal(t, 0, genes[0].USPSuiteID)
	assert.Equal(t, 1, genes[1].USPSuiteID)
}

func TestParseGenes_RejectsUnknownLabel(t *testing.T) {
	idx := fakeLabelIndex{"A": 0}
	_, err := parseGenes("Z:5", idx, false)
	assert.Error(t, err)
}

func TestParseGenes_RejectsWrongFieldCount(t *testing.T) {
	idx := fakeLabelIndex{"A": 0}
	_, err := parseGenes("A:5:0", idx, false)
	assert.Error(t, err)
}

func TestParseGenes_RejectsEmptyInput(t *testing.T) {
	idx := fakeLabelIndex{"A": 0}
	_, err := parseGenes("", idx, false)
	assert.Error(t, err)
}

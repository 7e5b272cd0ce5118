package result

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteArchiveTable renders one summary row per schedule in the
// archive — rank (position in the returned, already-sorted order) plus
// every named objective — to w (SPEC_FULL.md §2 "CLI", grounded on
// other_examples/manifests/ducminhle1904-crypto-dca-bot's go-pretty
// backtest-report rendering).
func WriteArchiveTable(w io.Writer, archive Archive, objectiveNames []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{"#", "Feasible"}
	for _, name := range objectiveNames {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for i, s := range archive.Schedules {
		row := table.Row{i, s.Feasible}
		for _, name := range objectiveNames {
			row = append(row, s.Objectives[name])
		}
		t.AppendRow(row)
	}

	t.Render()
}

// WriteCampaignsTable renders one schedule's campaign table, mirroring
// pyschedule.py's campaigns_table columns (SPEC_FULL.md §4).
func WriteCampaignsTable(w io.Writer, s Schedule) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Product", "Batches", "Kg", "Start", "First Harvest", "First Batch", "Last Batch"})
	for _, c := range s.Campaigns {
		t.AppendRow(table.Row{
			c.Product, c.Batches, c.Kg,
			c.Start.Format("2006-01-02"),
			c.FirstHarvest.Format("2006-01-02"),
			c.FirstBatchStored.Format("2006-01-02"),
			c.LastBatchStored.Format("2006-01-02"),
		})
	}
	t.Render()
}

// WriteBatchesTable renders one schedule's batch table, mirroring
// pyschedule.py's batches_table columns.
func WriteBatchesTable(w io.Writer, s Schedule) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Product", "Kg", "Harvested on", "Stored on", "Expires on", "Approved on"})
	for _, b := range s.Batches {
		t.AppendRow(table.Row{
			b.Product, b.Kg,
			b.HarvestedOn.Format("2006-01-02"),
			b.StoredOn.Format("2006-01-02"),
			b.ExpiresOn.Format("2006-01-02"),
			b.ApprovedOn.Format("2006-01-02"),
		})
	}
	t.Render()
}

// Package export writes the catalog and the roster to an xlsx workbook.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kubev2v/dexkeeper/internal/models"
)

const (
	CreaturesSheet = "Creatures"
	RosterSheet    = "Roster"
)

var (
	creatureHeader = []any{"Catalog ID", "Name", "Height", "Weight", "Base Experience", "Tags", "Traits", "Stat Total", "Owner", "Image"}
	rosterHeader   = []any{"Slot", "Catalog ID", "Creature", "Nickname", "Role", "Notes"}
)

// Build returns a workbook with one sheet for the creatures and one for the
// roster. The caller owns the returned file and must close it.
func Build(creatures []models.Creature, roster []models.RosterSlot) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", CreaturesSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(RosterSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := writeRows(f, CreaturesSheet, creatureHeader, creatureRows(creatures)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeRows(f, RosterSheet, rosterHeader, rosterRows(roster)); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, creatures []models.Creature, roster []models.RosterSlot) error {
	f, err := Build(creatures, roster)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func creatureRows(creatures []models.Creature) [][]any {
	rows := make([][]any, 0, len(creatures))
	for _, c := range creatures {
		traits := make([]string, 0, len(c.Traits))
		for _, t := range c.Traits {
			traits = append(traits, t.Name)
		}
		rows = append(rows, []any{
			c.CatalogID,
			c.Name,
			orEmpty(c.Height),
			orEmpty(c.Weight),
			orEmpty(c.BaseExperience),
			strings.Join(c.Tags, ", "),
			strings.Join(traits, ", "),
			c.StatTotal(),
			orEmpty(c.OwnerRef),
			orEmpty(c.ImageRef),
		})
	}
	return rows
}

func rosterRows(roster []models.RosterSlot) [][]any {
	rows := make([][]any, 0, len(roster))
	for i, slot := range roster {
		name := ""
		if slot.Creature != nil {
			name = slot.Creature.Name
		}
		rows = append(rows, []any{
			i + 1,
			slot.CatalogID,
			name,
			orEmpty(slot.Nickname),
			orEmpty(slot.Role),
			orEmpty(slot.Notes),
		})
	}
	return rows
}

// orEmpty dereferences optional values so that absent ones become blank cells.
func orEmpty[T any](v *T) any {
	if v == nil {
		return ""
	}
	return *v
}

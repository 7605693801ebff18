package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/phenrril/vishwakarma/internal/domain"
)

const (
	ProductsSheet   = "Products"
	CarpentersSheet = "Carpenters"
)

var (
	productHeader   = []any{"id", "slug", "name", "category", "wood", "finish", "material", "color", "color_hex", "price", "image", "dimensions"}
	carpenterHeader = []any{"id", "name", "experience", "rating", "hourly_rate", "specialty", "image"}
)

// WriteCatalog arma un libro con una hoja de productos y otra de carpinteros.
func WriteCatalog(w io.Writer, products []domain.Product, carpenters []domain.Carpenter) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(CarpentersSheet); err != nil {
		return err
	}

	if err := writeRow(f, ProductsSheet, 1, productHeader); err != nil {
		return err
	}
	for i, p := range products {
		row := []any{p.ID, p.Slug, p.Name, p.Category, p.Wood, p.Finish, p.Material, p.Color.Name, p.Color.Hex, p.Price, p.Image, p.Dimensions}
		if err := writeRow(f, ProductsSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, CarpentersSheet, 1, carpenterHeader); err != nil {
		return err
	}
	for i, c := range carpenters {
		row := []any{c.ID, c.Name, c.Experience, c.Rating, c.HourlyRate, strings.Join(c.Specialties, ", "), c.Image}
		if err := writeRow(f, CarpentersSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(ProductsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx: %s fila %d: %w", sheet, row, err)
	}
	return nil
}

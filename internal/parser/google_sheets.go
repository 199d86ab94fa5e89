package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bgocumlu/menu/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var (
	ErrNoData          = errors.New("no data found in spreadsheet")
	ErrItemWithoutMenu = errors.New("item row before any category row")
)

// Sheet layout, one sheet per language:
//
//	A category id | B name | C item name | D description | E price | F image | G tags
//
// A row with a category id opens a category; its name and description come
// from B and D. Rows with an empty A and a filled C are items of the last
// opened category. Tags are comma separated.
const (
	colCategoryID = iota
	colName
	colItemName
	colDescription
	colPrice
	colImage
	colTags
)

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseMenu reads the sheet named after lang ("en" or "tr") and returns its
// ordered categories and their content.
func (p *GoogleSheetsParser) ParseMenu(ctx context.Context, spreadsheetID string, lang domain.Language) ([]domain.CategoryRef, domain.MenuData, error) {
	readRange := fmt.Sprintf("%s!A:G", lang)
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	return parseRows(resp.Values)
}

func parseRows(rows [][]interface{}) ([]domain.CategoryRef, domain.MenuData, error) {
	if len(rows) <= 1 {
		return nil, nil, ErrNoData
	}

	categories := []domain.CategoryRef{}
	data := domain.MenuData{}
	var current string

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		if id := cell(row, colCategoryID); id != "" {
			name := cell(row, colName)
			categories = append(categories, domain.CategoryRef{ID: id, Name: name})
			data[id] = domain.MenuCategory{
				Title:       name,
				Description: cell(row, colDescription),
				Items:       []domain.MenuItem{},
			}
			current = id
			continue
		}

		itemName := cell(row, colItemName)
		if itemName == "" {
			continue
		}
		if current == "" {
			return nil, nil, fmt.Errorf("row %d: %w", i+1, ErrItemWithoutMenu)
		}

		category := data[current]
		category.Items = append(category.Items, domain.MenuItem{
			Name:        itemName,
			Description: cell(row, colDescription),
			Price:       cell(row, colPrice),
			Image:       cell(row, colImage),
			Tags:        splitTags(cell(row, colTags)),
		})
		data[current] = category
	}

	if len(categories) == 0 {
		return nil, nil, ErrNoData
	}

	return categories, data, nil
}

func cell(row []interface{}, col int) string {
	if col >= len(row) || row[col] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[col]))
}

func splitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Package excel reads flashcards from spreadsheet files. It only parses;
// attaching the cards to a deck is the caller's job.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/models"
)

// ImportConfig defines where the card fields live in the sheet.
type ImportConfig struct {
	FilePath         string // path to the .xlsx or .csv file
	SheetName        string // sheet to read; empty means the first sheet
	QuestionColumn   string // column with the question
	AnswerColumn     string // column with the answer
	DifficultyColumn string // column with the difficulty, optional
	StartRow         int    // first data row, 1-based
	Topic            string // topic stamped on every imported card
}

// DefaultImportConfig returns the standard layout: question in A, answer in
// B, difficulty in C, header in row 1.
func DefaultImportConfig(path, topic string) ImportConfig {
	return ImportConfig{
		FilePath:         path,
		QuestionColumn:   "A",
		AnswerColumn:     "B",
		DifficultyColumn: "C",
		StartRow:         2,
		Topic:            topic,
	}
}

// ImportResult holds the parsed cards and per-row outcomes.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
	Cards          []models.Flashcard
}

// ImportCards reads flashcards from an Excel or CSV file. Rows that cannot
// be used are skipped and reported in the result, not fatal.
func ImportCards(config ImportConfig) (*ImportResult, error) {
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("failed to open Excel file: %v", err))
	}
	defer f.Close()

	sheet := config.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("failed to get rows: %v", err))
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		processRow(row, config, result, i+1)
	}
	return result, nil
}

func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("failed to open CSV file: %v", err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewBadRequestError(fmt.Sprintf("error reading CSV: %v", err))
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		processRow(row, config, result, rowNum)
	}
	return result, nil
}

func processRow(row []string, config ImportConfig, result *ImportResult, rowNum int) {
	var question, answer, difficulty string
	if idx := columnToIndex(config.QuestionColumn); idx >= 0 && idx < len(row) {
		question = strings.TrimSpace(row[idx])
	}
	if idx := columnToIndex(config.AnswerColumn); idx >= 0 && idx < len(row) {
		answer = strings.TrimSpace(row[idx])
	}
	if config.DifficultyColumn != "" {
		if idx := columnToIndex(config.DifficultyColumn); idx >= 0 && idx < len(row) {
			difficulty = strings.TrimSpace(row[idx])
		}
	}

	if question == "" {
		result.Skipped++
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: question cannot be empty", rowNum))
		return
	}
	if answer == "" {
		result.Skipped++
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: answer cannot be empty", rowNum))
		return
	}

	level, ok := models.ParseDifficulty(difficulty)
	if !ok {
		level = models.DifficultyIntermediate
	}

	result.Cards = append(result.Cards, models.Flashcard{
		ID:         models.NewID(),
		Question:   question,
		Answer:     answer,
		Topic:      config.Topic,
		Status:     models.CardNew,
		Difficulty: level,
		CreatedAt:  time.Now().UTC(),
	})
	result.Imported++
}

func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}

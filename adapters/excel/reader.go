package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"alumstats/domain/survey"
	"alumstats/internal"
	apperrors "alumstats/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV survey exports
type DataReader struct {
	config   ExcelConfig
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewDataReader creates a reader; files ending in .xlsx are read as
// workbooks, anything else as delimited text.
func NewDataReader(config ExcelConfig, logger *internal.Logger) *DataReader {
	if config.Delimiter == 0 {
		config.Delimiter = DefaultExcelConfig().Delimiter
	}
	if config.Sheet == "" {
		config.Sheet = DefaultExcelConfig().Sheet
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	fileType := "csv"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{config: config, fileType: fileType, logger: logger}
}

// ReadDataset loads the export and maps its header onto survey fields.
func (r *DataReader) ReadDataset(ctx context.Context) (*survey.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.ReadData()
	if err != nil {
		return nil, err
	}

	ds := survey.NewDataset(data.Headers, data.Records)
	known := 0
	for _, f := range survey.AllFields() {
		if ds.Has(f) {
			known++
		}
	}
	r.logger.Info("[DataReader] %d respondents, %d/%d known columns in %s", ds.Len(), known, len(survey.AllFields()), r.config.FilePath)
	if ignored := len(ds.Headers()) - known; ignored > 0 {
		r.logger.Debug("[DataReader] ignored %d unrecognised columns", ignored)
	}
	return ds, nil
}

// ReadData reads the header row and records without interpreting them
func (r *DataReader) ReadData() (*ExcelData, error) {
	r.logger.Debug("[DataReader] Starting to read %s file: %s", r.fileType, r.config.FilePath)

	if r.config.FilePath == "" {
		return nil, apperrors.FileError("<empty path>", fmt.Errorf("no input file given"))
	}
	info, err := os.Stat(r.config.FilePath)
	if err != nil {
		return nil, apperrors.FileError(r.config.FilePath, err)
	}
	if info.IsDir() {
		return nil, apperrors.FileError(r.config.FilePath, fmt.Errorf("is a directory"))
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
}

// readCSVData reads delimited text with double-quote escaping. Quotes are
// lazy: a stray quote inside free text stays part of the answer.
func (r *DataReader) readCSVData() (*ExcelData, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, apperrors.FileError(r.config.FilePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = r.config.Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, apperrors.FileError(r.config.FilePath, err)
		}
		return nil, apperrors.ParseError(r.config.FilePath, err)
	}
	r.logger.Debug("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// readExcelData reads the configured sheet of a workbook
func (r *DataReader) readExcelData() (*ExcelData, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, apperrors.ParseError(r.config.FilePath, err)
	}
	defer f.Close()

	readStart := time.Now()
	rows, err := f.GetRows(r.config.Sheet)
	if err != nil {
		return nil, apperrors.ParseError(r.config.FilePath, fmt.Errorf("sheet %s: %w", r.config.Sheet, err))
	}
	r.logger.Debug("[DataReader] %s read in %.2fms (%d rows)", r.config.Sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// processRows splits the header from the data rows. Cells are kept
// verbatim since passes compare answers exactly.
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	if len(rows) == 0 {
		return nil, apperrors.ParseError(r.config.FilePath, fmt.Errorf("no header row"))
	}

	headers := make([]string, len(rows[0]))
	copy(headers, rows[0])

	return &ExcelData{
		Headers: headers,
		Records: rows[1:],
	}, nil
}

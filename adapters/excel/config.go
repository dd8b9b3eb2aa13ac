package excel

// ExcelConfig holds configuration for the survey export source
type ExcelConfig struct {
	FilePath  string `json:"file_path"`
	Delimiter rune   `json:"delimiter"`
	Sheet     string `json:"sheet"`
}

// DefaultExcelConfig returns the survey tool's export defaults
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		Delimiter: ';',
		Sheet:     "Sheet1",
	}
}

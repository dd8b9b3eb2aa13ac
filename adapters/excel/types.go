package excel

// ExcelData represents the raw export before header mapping
type ExcelData struct {
	Headers []string   // Column headers
	Records [][]string // Data rows, possibly ragged
}

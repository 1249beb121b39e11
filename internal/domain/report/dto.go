package report

// Export is a rendered report file ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

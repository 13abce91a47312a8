package logging

// Field names shared by every stage of the report pipeline so that log
// output can be filtered by stage, dataset or file.
const (
	FieldFile      = "file_path"
	FieldDataset   = "dataset"
	FieldChart     = "chart"
	FieldStage     = "stage"
	FieldDuration  = "duration_ms"
	FieldCount     = "count"
	FieldDropped   = "dropped"
	FieldDelimiter = "delimiter"
	FieldPages     = "pages"
	FieldSink      = "sink"
)

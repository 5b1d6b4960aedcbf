package domain

// FileExtraction is the outcome of pulling a gene list out of a
// tabular file.
type FileExtraction struct {
	// Genes is the normalized gene list from the chosen column.
	Genes GeneSet

	// File is the base name of the source file.
	File string

	// GeneColumn is the header of the column the genes came from.
	GeneColumn string

	// Columns is the cleaned file header, in file order.
	Columns []string

	// TotalRows is the number of data rows in the file, counting rows
	// whose gene cell was empty or invalid.
	TotalRows int
}

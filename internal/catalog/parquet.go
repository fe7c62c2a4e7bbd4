package catalog

import "github.com/byiringiro-albert/portfolio/internal/models"

// ParquetRow is the columnar layout of a publication in a Parquet catalog.
type ParquetRow struct {
	ID                  string   `parquet:"id"`
	Title               string   `parquet:"title"`
	Authors             []string `parquet:"authors,list"`
	Year                int64    `parquet:"year"`
	Category            string   `parquet:"category"`
	Keywords            []string `parquet:"keywords,list"`
	Abstract            string   `parquet:"abstract"`
	Journal             string   `parquet:"journal,optional"`
	Volume              string   `parquet:"volume,optional"`
	Issue               string   `parquet:"issue,optional"`
	Pages               string   `parquet:"pages,optional"`
	Book                string   `parquet:"book,optional"`
	Publisher           string   `parquet:"publisher,optional"`
	DownloadRequestable bool     `parquet:"download_requestable"`
	Featured            bool     `parquet:"featured"`
	PreviewFile         string   `parquet:"preview_file"`
}

// Publication converts the row into the catalog model.
func (r ParquetRow) Publication() models.Publication {
	return models.Publication{
		ID:                  r.ID,
		Title:               r.Title,
		Authors:             r.Authors,
		Year:                int(r.Year),
		Category:            r.Category,
		Keywords:            r.Keywords,
		Abstract:            r.Abstract,
		Journal:             r.Journal,
		Volume:              models.Text(r.Volume),
		Issue:               models.Text(r.Issue),
		Pages:               models.Text(r.Pages),
		Book:                r.Book,
		Publisher:           r.Publisher,
		DownloadRequestable: r.DownloadRequestable,
		Featured:            r.Featured,
		PreviewFile:         r.PreviewFile,
	}
}

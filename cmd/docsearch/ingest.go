package main

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-docsearch-backend/internal/http/middleware"
	"github.com/tbourn/go-docsearch-backend/internal/search"
	"github.com/tbourn/go-docsearch-backend/internal/services"
)

// ingested is printed after a document is stored.
type ingested struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	UserID    string `json:"userId" yaml:"userId"`
	PageCount int    `json:"pageCount" yaml:"pageCount"`
	HasText   bool   `json:"hasText" yaml:"hasText"`
}

func newIngestCmd(a *app) *cobra.Command {
	var file, name, user, output string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Store a local extracted-text file as a searchable document.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			text, err := search.PrepareTextFile(file)
			if err != nil {
				return err
			}
			if name == "" {
				name = filepath.Base(file)
			}

			db, err := openDB(a.cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			doc, err := services.NewDocumentService(db).Create(cmd.Context(), user, name, &text)
			if err != nil {
				return err
			}
			log.Info().Str("document_id", doc.ID).Int("pages", doc.PageCount).Msg("document ingested")

			return write(cmd.OutOrStdout(), output, ingested{
				ID:        doc.ID,
				Name:      doc.Name,
				UserID:    doc.UserID,
				PageCount: doc.PageCount,
				HasText:   doc.HasText(),
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&file, "file", "f", "", "path to the extracted text")
	fl.StringVar(&name, "name", "", "document name (default: file name)")
	fl.StringVar(&user, "user", middleware.DefaultUserID, "owner of the document")
	fl.StringVarP(&output, "output", "o", outputJSON, "output format: json|yaml")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

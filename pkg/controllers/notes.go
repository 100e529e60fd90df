package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/httperrors"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/pkg/importer"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/notes"
	"github.com/nremp/dashboard/pkg/store"
)

type NoteListResponse struct {
	Data    []models.Note `json:"data"`                    // List of notes, newest first
	Loading bool          `json:"loading" example:"false"` // True until the first snapshot arrived
}

// NoteCreated is the reference to a created note.
type NoteCreated struct {
	ID string `json:"id" example:"0190d3a4-5f6e-7c2b-9a1d-3e4f5a6b7c8d"`
}

type NoteCreateResponse struct {
	Data    NoteCreated `json:"data"`                             // The created note
	Message string      `json:"message" example:"Nota adicionada."` // Friendly success message
}

type MessageResponse struct {
	Message string `json:"message" example:"Nota atualizada."` // Friendly success message
}

// ImportResult is the outcome of a CSV import.
type ImportResult struct {
	Imported int                   `json:"imported" example:"12"` // Number of notes written
	Skipped  []importer.SkippedRow `json:"skipped"`               // Rows that were not imported
}

type ImportResponse struct {
	Data    ImportResult `json:"data"`                                 // Outcome of the import
	Message string       `json:"message" example:"12 notas importadas."` // Friendly success message
}

type NoteQueryFilter struct {
	Search string `form:"search"` // Case insensitive text in number, client, category or material. * matches any text.
}

// RegisterNoteRoutes registers the routes for notes with
// the RouterGroup that is passed.
func (co Controller) RegisterNoteRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsNoteList)
		r.GET("", co.GetNotes)
		r.POST("", co.CreateNote)
		r.OPTIONS("/import", co.OptionsNoteImport)
		r.POST("/import", co.ImportNotes)
	}

	// Note with ID
	{
		r.OPTIONS("/:id", co.OptionsNoteDetail)
		r.PUT("/:id", co.UpdateNote)
		r.PATCH("/:id", co.PatchNote)
		r.DELETE("/:id", co.DeleteNote)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notes
// @Success		204
// @Router			/v1/notes [options]
func (co Controller) OptionsNoteList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notes
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/notes/{id} [options]
func (co Controller) OptionsNoteDetail(c *gin.Context) {
	httputil.OptionsPutPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notes
// @Success		204
// @Router			/v1/notes/import [options]
func (co Controller) OptionsNoteImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get notes
// @Description	Returns the notes, newest first
// @Tags			Notes
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	NoteListResponse
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Param			search	query		string	false	"Filter by text"
// @Router			/v1/notes [get]
func (co Controller) GetNotes(c *gin.Context) {
	var filter NoteQueryFilter
	if err := c.BindQuery(&filter); err != nil {
		httperrors.New(c, http.StatusBadRequest, "The query string contains unparseable data. Please check the values")
		return
	}

	list, err := co.Workspace.Notes()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, NoteListResponse{
		Data:    notes.Filter(list, filter.Search),
		Loading: !co.Workspace.Loaded(store.CollectionNotes),
	})
}

// @Summary		Create note
// @Description	Creates a note. Amount and date are accepted as typed, e.g. "1.234,56" and "05/03/2024".
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	NoteCreateResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			note	body		notes.Input	true	"Note"
// @Router			/v1/notes [post]
func (co Controller) CreateNote(c *gin.Context) {
	var in notes.Input
	if err := httputil.BindData(c, &in); err != nil {
		httperrors.Handler(c, err)
		return
	}

	id, err := co.Notes.Add(c.Request.Context(), in)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, NoteCreateResponse{
		Data:    NoteCreated{ID: id},
		Message: messages.Success(httputil.Language(c), messages.NoteCreated),
	})
}

// @Summary		Replace note
// @Description	Replaces all user editable fields of a note
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Param			id		path		string		true	"ID formatted as string"
// @Param			note	body		notes.Input	true	"Note"
// @Router			/v1/notes/{id} [put]
func (co Controller) UpdateNote(c *gin.Context) {
	var in notes.Input
	if err := httputil.BindData(c, &in); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := co.Notes.Update(c.Request.Context(), c.Param("id"), in); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: messages.Success(httputil.Language(c), messages.NoteUpdated)})
}

// @Summary		Update note
// @Description	Updates the fields of a note that are set in the body
// @Tags			Notes
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Param			id		path		string				true	"ID formatted as string"
// @Param			note	body		models.NotePatch	true	"Fields to change"
// @Router			/v1/notes/{id} [patch]
func (co Controller) PatchNote(c *gin.Context) {
	var patch models.NotePatch
	if err := httputil.BindData(c, &patch); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := co.Notes.Patch(c.Request.Context(), c.Param("id"), patch); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: messages.Success(httputil.Language(c), messages.NoteUpdated)})
}

// @Summary		Delete note
// @Description	Deletes a note
// @Tags			Notes
// @Security		BearerAuth
// @Success		204
// @Failure		403	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/notes/{id} [delete]
func (co Controller) DeleteNote(c *gin.Context) {
	if err := co.Notes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// getUploadedFile returns the uploaded CSV file. It accepts a multipart
// form with a "file" field or a text/csv body.
func getUploadedFile(c *gin.Context) (io.ReadCloser, error) {
	if strings.HasPrefix(c.ContentType(), "text/csv") {
		if c.Request.ContentLength == 0 {
			return nil, importer.ErrNoFile
		}
		return c.Request.Body, nil
	}

	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, importer.ErrNoFile
	}
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(formFile.Filename), ".csv") {
		return nil, httperrors.Error{
			Status: http.StatusBadRequest,
			Err:    fmt.Errorf("this endpoint only supports .csv files"),
		}
	}

	return formFile.Open()
}

// @Summary		Import notes
// @Description	Imports notes from a CSV file. Rows lacking a client, date or amount are skipped. Importing the same file twice creates every note twice.
// @Tags			Notes
// @Accept			multipart/form-data
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		422		{object}	httperrors.HTTPError
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/notes/import [post]
func (co Controller) ImportNotes(c *gin.Context) {
	f, err := getUploadedFile(c)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}
	defer f.Close()

	result, err := co.Notes.Import(c.Request.Context(), f)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	tag := httputil.Language(c)
	message := messages.Success(tag, messages.NotesImported, len(result.Notes))
	if len(result.Skipped) > 0 {
		message += " " + messages.Success(tag, messages.RowsSkipped, len(result.Skipped))
	}

	c.JSON(http.StatusCreated, ImportResponse{
		Data: ImportResult{
			Imported: len(result.Notes),
			Skipped:  append([]importer.SkippedRow{}, result.Skipped...),
		},
		Message: message,
	})
}

package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"git.home.luguber.info/inful/docugen/internal/docset"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/input"
)

// generateRequest is the full-generation submission body.
type generateRequest struct {
	Kind          string       `json:"kind"` // url|file|text|uiDescription
	URL           string       `json:"githubUrl,omitempty"`
	Text          string       `json:"codebaseInput,omitempty"`
	UIDescription string       `json:"uiDescription,omitempty"`
	UIOnlyMode    bool         `json:"uiOnlyMode,omitempty"`
	File          *filePayload `json:"codebaseFile,omitempty"`
}

type filePayload struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Base64      string `json:"base64"`
}

type regenerateRequest struct {
	Section      string `json:"targetSection"`
	Tone         string `json:"tone"`
	CustomPrompt string `json:"customPrompt,omitempty"`
}

type editRequest struct {
	Markdown string `json:"markdown"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub := input.Submission{
		Kind:          input.Kind(req.Kind),
		URL:           req.URL,
		Text:          req.Text,
		UIDescription: req.UIDescription,
	}
	if req.File != nil {
		data, err := base64.StdEncoding.DecodeString(req.File.Base64)
		if err != nil {
			s.Error(w, http.StatusBadRequest, "codebaseFile is not valid base64")
			return
		}
		sub.File = &input.FileUpload{
			Name:        req.File.Name,
			ContentType: req.File.ContentType,
			Data:        data,
		}
	}

	snap, err := s.session.Generate(r.Context(), sub, req.UIOnlyMode)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.Success(w, http.StatusOK, snap)
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	var req regenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	section, err := docset.ParseSection(req.Section)
	if err != nil {
		s.writeError(w, err)
		return
	}
	tone, err := docset.ParseTone(req.Tone)
	if err != nil {
		s.writeError(w, err)
		return
	}

	content, err := s.session.Regenerate(r.Context(), section, tone, req.CustomPrompt)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.Success(w, http.StatusOK, map[string]string{"regeneratedContent": content})
}

func (s *Server) handleGetDocuments(w http.ResponseWriter, r *http.Request) {
	s.Success(w, http.StatusOK, s.session.Documents())
}

func (s *Server) handleEditSection(w http.ResponseWriter, r *http.Request) {
	section, err := docset.ParseSection(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.session.EditSection(section, req.Markdown); err != nil {
		s.writeError(w, err)
		return
	}
	s.Success(w, http.StatusOK, map[string]string{"section": string(section)})
}

func (s *Server) handleExportArchive(w http.ResponseWriter, r *http.Request) {
	result, err := s.session.ExportArchive()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.Success(w, http.StatusOK, result)
}

func (s *Server) handleExportRemote(w http.ResponseWriter, r *http.Request) {
	report, err := s.session.ExportRemote(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.Success(w, http.StatusOK, map[string]any{
		"success": report.Success(),
		"results": report.Results,
	})
}

// writeError maps the error taxonomy onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch derrors.GetCategory(err) {
	case derrors.CategoryValidation:
		code = http.StatusBadRequest
	case derrors.CategoryRuntime:
		code = http.StatusConflict
	case derrors.CategoryConfig:
		code = http.StatusInternalServerError
	case derrors.CategoryGeneration, derrors.CategorySchema, derrors.CategoryNetwork, derrors.CategoryExport:
		code = http.StatusBadGateway
	}
	s.Error(w, code, err.Error())
}

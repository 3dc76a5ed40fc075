package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"newsboard/internal/constants"
	"newsboard/internal/utils"
)

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	utils.JSON(rr, http.StatusOK, map[string]interface{}{
		"topics": []map[string]interface{}{
			{"slug": "cats", "description": "Not dogs"},
		},
	})

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get(constants.HeaderContentType); ct != constants.ContentTypeJSON {
		t.Errorf("Content-Type = %q, want %q", ct, constants.ContentTypeJSON)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal body: %v", err)
	}

	want := map[string]interface{}{
		"topics": []interface{}{
			map[string]interface{}{"slug": "cats", "description": "Not dogs"},
		},
	}
	if !reflect.DeepEqual(body, want) {
		t.Errorf("body = %v, want %v", body, want)
	}
}

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()

	utils.Error(rr, http.StatusNotFound, constants.MsgArticleNotFound)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal body: %v", err)
	}
	if body["msg"] != constants.MsgArticleNotFound {
		t.Errorf("msg = %q, want %q", body["msg"], constants.MsgArticleNotFound)
	}
	if len(body) != 1 {
		t.Errorf("error body has %d keys, want exactly one", len(body))
	}
}

func TestErrorFromAppError(t *testing.T) {
	tests := []struct {
		name       string
		appErr     *utils.AppError
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "Validation error",
			appErr:     utils.NewBadRequestError(),
			wantStatus: http.StatusBadRequest,
			wantMsg:    constants.MsgBadRequest,
		},
		{
			name:       "Not found error",
			appErr:     utils.NewNotFoundError(constants.MsgCommentNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    constants.MsgCommentNotFound,
		},
		{
			name:       "Internal error hides the cause",
			appErr:     utils.ParseError(http.ErrServerClosed),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    constants.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			utils.ErrorFromAppError(rr, tt.appErr)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to unmarshal body: %v", err)
			}
			if body["msg"] != tt.wantMsg {
				t.Errorf("msg = %q, want %q", body["msg"], tt.wantMsg)
			}
		})
	}
}

func TestNoContent(t *testing.T) {
	rr := httptest.NewRecorder()

	utils.NoContent(rr)

	if rr.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rr.Body.String())
	}
}

func TestNotFound_DefaultMessage(t *testing.T) {
	rr := httptest.NewRecorder()

	utils.NotFound(rr, "")

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal body: %v", err)
	}
	if body["msg"] != constants.MsgNotFound {
		t.Errorf("msg = %q, want %q", body["msg"], constants.MsgNotFound)
	}
}

package rooms

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"atrium/models"
	"atrium/store"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeRooms counts writes so tests can assert nothing was persisted.
type fakeRooms struct {
	created int
	updated int
}

func (f *fakeRooms) List(_ context.Context, _ *store.Query) ([]models.Room, error) {
	return nil, nil
}

func (f *fakeRooms) Get(_ context.Context, _ string) (models.Room, error) {
	return models.Room{}, store.ErrNotFound
}

func (f *fakeRooms) Create(_ context.Context, _ models.Room) (string, error) {
	f.created++
	return "r1", nil
}

func (f *fakeRooms) Update(_ context.Context, _ string, _ bson.M) error {
	f.updated++
	return nil
}

func (f *fakeRooms) Delete(_ context.Context, _ string) error {
	return nil
}

func swapRooms(t *testing.T) *fakeRooms {
	t.Helper()
	fake := &fakeRooms{}
	prev := Rooms
	Rooms = fake
	t.Cleanup(func() { Rooms = prev })
	return fake
}

func roomForm(t *testing.T, fields map[string]string, fileField, fileName string, fileBody []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("creating file part: %v", err)
		}
		if _, err := fw.Write(fileBody); err != nil {
			t.Fatalf("writing file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing form: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

// A form whose image cannot be stored must never reach the collection:
// the room is not created with a missing or broken image reference.
func TestCreateRoomAbortsWhenUploadFails(t *testing.T) {
	fake := swapRooms(t)

	body, contentType := roomForm(t,
		map[string]string{"name": "Deluxe", "price": "20000"},
		"images", "notes.txt", []byte("not an image"))

	req := httptest.NewRequest(http.MethodPost, "/api/rooms", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	CreateRoom(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if fake.created != 0 {
		t.Fatalf("room must not be created after a failed upload, got %d creates", fake.created)
	}
}

func TestCreateRoomWithoutImages(t *testing.T) {
	fake := swapRooms(t)

	body, contentType := roomForm(t,
		map[string]string{"name": "Standard", "price": "12000", "quantity": "3"},
		"", "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/rooms", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	CreateRoom(rec, req, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if fake.created != 1 {
		t.Fatalf("expected exactly one create, got %d", fake.created)
	}
}

func TestCreateRoomRequiresNameAndPrice(t *testing.T) {
	fake := swapRooms(t)

	body, contentType := roomForm(t, map[string]string{"name": "Deluxe"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	CreateRoom(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if fake.created != 0 {
		t.Fatalf("expected no create, got %d", fake.created)
	}
}

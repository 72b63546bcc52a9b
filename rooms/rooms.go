package rooms

import (
	"context"
	"net/http"
	"time"

	"atrium/db"
	"atrium/filemgr"
	"atrium/models"
	"atrium/mq"
	"atrium/store"
	"atrium/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// roomStore is what the handlers need from the rooms collection; tests
// substitute a fake.
type roomStore interface {
	List(ctx context.Context, q *store.Query) ([]models.Room, error)
	Get(ctx context.Context, id string) (models.Room, error)
	Create(ctx context.Context, doc models.Room) (string, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

var Rooms roomStore = store.New[models.Room](db.RoomsCollection)

// GetRooms lists every room type, newest first.
func GetRooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := store.NewQuery().SortDesc("createdAt")
	if branch := r.URL.Query().Get("branchId"); branch != "" {
		q.Eq("branchId", branch)
	}

	rooms, err := Rooms.List(ctx, q)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	utils.RespondWithJSON(w, http.StatusOK, rooms)
}

func GetRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	room, err := Rooms.Get(ctx, ps.ByName("id"))
	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Room not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch room")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, room)
}

// CreateRoom accepts a multipart form so images travel with the fields.
// Images are saved first; if any upload fails, the room is never
// written.
func CreateRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	room := models.Room{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       utils.ParseFloat(r.FormValue("price")),
		Capacity:    utils.ParseInt(r.FormValue("capacity")),
		Quantity:    utils.ParseInt(r.FormValue("quantity")),
		Amenities:   utils.SplitCSV(r.FormValue("amenities")),
		BranchID:    r.FormValue("branchId"),
		Available:   utils.ParseBool(r.FormValue("available")),
	}
	if room.Name == "" || room.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and a positive price are required")
		return
	}
	if room.Quantity < 1 {
		room.Quantity = 1
	}

	images, err := filemgr.SaveFormFiles(r.MultipartForm, "images", filemgr.EntityRoom, filemgr.PicGallery)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image upload failed: "+err.Error())
		return
	}
	room.Images = images

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := Rooms.Create(ctx, room)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create room")
		return
	}
	room.ID = id

	go mq.Emit(r.Context(), "room-created", models.Index{EntityType: "room", EntityId: id, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, room)
}

// EditRoom updates the named fields only. A fresh image set replaces the
// previous one; old files stay on disk.
func EditRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"name", "description", "branchId"} {
		if v := r.FormValue(key); v != "" {
			fields[key] = v
		}
	}
	if v := r.FormValue("price"); v != "" {
		fields["price"] = utils.ParseFloat(v)
	}
	if v := r.FormValue("capacity"); v != "" {
		fields["capacity"] = utils.ParseInt(v)
	}
	if v := r.FormValue("quantity"); v != "" {
		fields["quantity"] = utils.ParseInt(v)
	}
	if v := r.FormValue("amenities"); v != "" {
		fields["amenities"] = utils.SplitCSV(v)
	}
	if v := r.FormValue("available"); v != "" {
		fields["available"] = utils.ParseBool(v)
	}

	images, err := filemgr.SaveFormFiles(r.MultipartForm, "images", filemgr.EntityRoom, filemgr.PicGallery)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image upload failed: "+err.Error())
		return
	}
	if len(images) > 0 {
		fields["images"] = images
	}
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Rooms.Update(ctx, id, fields); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Room not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update room")
		return
	}

	go mq.Emit(r.Context(), "room-edited", models.Index{EntityType: "room", EntityId: id, Method: "PUT"})

	utils.SendResponse(w, http.StatusOK, fields, "Room updated", nil)
}

func DeleteRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Rooms.Delete(ctx, id); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Room not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete room")
		return
	}

	go mq.Emit(r.Context(), "room-deleted", models.Index{EntityType: "room", EntityId: id, Method: "DELETE"})

	w.WriteHeader(http.StatusNoContent)
}

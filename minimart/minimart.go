package minimart

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

var Items = store.New[models.MinimartItem](db.MinimartCollection)

func GetItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := store.NewQuery().SortAsc("name")
	if cat := r.URL.Query().Get("category"); cat != "" {
		q.Eq("category", cat)
	}

	items, err := Items.List(ctx, q)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch minimart items")
		return
	}
	if items == nil {
		items = []models.MinimartItem{}
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func CreateItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	item := models.MinimartItem{
		Name:        r.FormValue("name"),
		Price:       utils.ParseFloat(r.FormValue("price")),
		Category:    r.FormValue("category"),
		Available:   utils.ParseBool(r.FormValue("available")),
		Description: r.FormValue("description"),
	}
	if item.Name == "" || item.Category == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and category are required")
		return
	}

	// The document stores only the URL, so the upload has to land first;
	// a failed upload abandons the item.
	image, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityMinimart, filemgr.PicPhoto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image upload failed: "+err.Error())
		return
	}
	item.Image = image

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := Items.Create(ctx, item)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	item.ID = id

	go mq.Emit(r.Context(), "minimart-created", models.Index{EntityType: "minimart", EntityId: id, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, item)
}

func EditItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"name", "category", "description"} {
		if v := r.FormValue(key); v != "" {
			fields[key] = v
		}
	}
	if v := r.FormValue("price"); v != "" {
		fields["price"] = utils.ParseFloat(v)
	}
	if v := r.FormValue("available"); v != "" {
		fields["available"] = utils.ParseBool(v)
	}

	image, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityMinimart, filemgr.PicPhoto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image upload failed: "+err.Error())
		return
	}
	if image != "" {
		fields["image"] = image
	}
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Items.Update(ctx, id, fields); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Item not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	go mq.Emit(r.Context(), "minimart-edited", models.Index{EntityType: "minimart", EntityId: id, Method: "PUT"})

	utils.SendResponse(w, http.StatusOK, fields, "Item updated", nil)
}

func DeleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Items.Delete(ctx, id); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Item not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	go mq.Emit(r.Context(), "minimart-deleted", models.Index{EntityType: "minimart", EntityId: id, Method: "DELETE"})

	w.WriteHeader(http.StatusNoContent)
}

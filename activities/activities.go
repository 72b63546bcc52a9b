package activities

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

var Activities = store.New[models.Activity](db.ActivitiesCollection)

func GetActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := store.NewQuery().SortAsc("name")
	if cat := r.URL.Query().Get("category"); cat != "" {
		q.Eq("category", cat)
	}

	acts, err := Activities.List(ctx, q)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}
	if acts == nil {
		acts = []models.Activity{}
	}
	utils.RespondWithJSON(w, http.StatusOK, acts)
}

func CreateActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	act := models.Activity{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Price:       utils.ParseFloat(r.FormValue("price")),
		Available:   utils.ParseBool(r.FormValue("available")),
	}
	if act.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if act.Category == "" {
		act.Category = "General"
	}

	image, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityActivity, filemgr.PicPhoto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image upload failed: "+err.Error())
		return
	}
	act.ImageURL = image

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := Activities.Create(ctx, act)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create activity")
		return
	}
	act.ID = id

	go mq.Emit(r.Context(), "activity-created", models.Index{EntityType: "activity", EntityId: id, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, act)
}

func EditActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"name", "description", "category"} {
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

	image, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityActivity, filemgr.PicPhoto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image upload failed: "+err.Error())
		return
	}
	if image != "" {
		fields["imageUrl"] = image
	}
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Activities.Update(ctx, id, fields); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Activity not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update activity")
		return
	}

	go mq.Emit(r.Context(), "activity-edited", models.Index{EntityType: "activity", EntityId: id, Method: "PUT"})

	utils.SendResponse(w, http.StatusOK, fields, "Activity updated", nil)
}

func DeleteActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Activities.Delete(ctx, id); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Activity not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete activity")
		return
	}

	go mq.Emit(r.Context(), "activity-deleted", models.Index{EntityType: "activity", EntityId: id, Method: "DELETE"})

	w.WriteHeader(http.StatusNoContent)
}

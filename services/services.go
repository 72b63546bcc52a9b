package services

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

var Services = store.New[models.Service](db.ServicesCollection)

func GetServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svcs, err := Services.List(ctx, store.NewQuery().SortAsc("name"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	if svcs == nil {
		svcs = []models.Service{}
	}
	utils.RespondWithJSON(w, http.StatusOK, svcs)
}

func CreateService(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	svc := models.Service{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Icon:        r.FormValue("icon"),
		BranchID:    r.FormValue("branchId"),
	}
	if svc.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	image, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityService, filemgr.PicPhoto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image upload failed: "+err.Error())
		return
	}
	svc.ImageURL = image

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := Services.Create(ctx, svc)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create service")
		return
	}
	svc.ID = id

	go mq.Emit(r.Context(), "service-created", models.Index{EntityType: "service", EntityId: id, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, svc)
}

func EditService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"name", "description", "icon", "branchId"} {
		if v := r.FormValue(key); v != "" {
			fields[key] = v
		}
	}

	image, err := filemgr.SaveFormFile(r.MultipartForm, "image", filemgr.EntityService, filemgr.PicPhoto)
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

	if err := Services.Update(ctx, id, fields); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Service not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update service")
		return
	}

	go mq.Emit(r.Context(), "service-edited", models.Index{EntityType: "service", EntityId: id, Method: "PUT"})

	utils.SendResponse(w, http.StatusOK, fields, "Service updated", nil)
}

func DeleteService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Services.Delete(ctx, id); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Service not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	go mq.Emit(r.Context(), "service-deleted", models.Index{EntityType: "service", EntityId: id, Method: "DELETE"})

	w.WriteHeader(http.StatusNoContent)
}

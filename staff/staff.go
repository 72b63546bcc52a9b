package staff

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

var Members = store.New[models.StaffMember](db.StaffCollection)

func GetStaff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := store.NewQuery().SortAsc("name").Limit(100)
	if dept := r.URL.Query().Get("department"); dept != "" {
		q.Eq("department", dept)
	}

	members, err := Members.List(ctx, q)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch staff")
		return
	}
	if members == nil {
		members = []models.StaffMember{}
	}
	utils.RespondWithJSON(w, http.StatusOK, members)
}

// CreateStaff saves the photo before the record; a failed upload aborts
// the whole submit.
func CreateStaff(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	member := models.StaffMember{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Department:  r.FormValue("department"),
		Position:    r.FormValue("position"),
		EmployeeID:  r.FormValue("employeeId"),
		Description: r.FormValue("description"),
		Active:      utils.ParseBool(r.FormValue("active")),
	}
	if member.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if member.EmployeeID == "" {
		member.EmployeeID = "EMP" + utils.GenerateRandomDigitString(6)
	}

	photoURL, err := filemgr.SaveFormFile(r.MultipartForm, "photo", filemgr.EntityStaff, filemgr.PicPhoto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Photo upload failed: "+err.Error())
		return
	}
	member.PhotoURL = photoURL

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := Members.Create(ctx, member)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create staff member")
		return
	}
	member.ID = id

	go mq.Emit(r.Context(), "staff-created", models.Index{EntityType: "staff", EntityId: id, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, member)
}

func EditStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"name", "email", "phone", "department", "position", "employeeId", "description"} {
		if v := r.FormValue(key); v != "" {
			fields[key] = v
		}
	}
	if v := r.FormValue("active"); v != "" {
		fields["active"] = utils.ParseBool(v)
	}

	photoURL, err := filemgr.SaveFormFile(r.MultipartForm, "photo", filemgr.EntityStaff, filemgr.PicPhoto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Photo upload failed: "+err.Error())
		return
	}
	if photoURL != "" {
		fields["photoUrl"] = photoURL
	}
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Members.Update(ctx, id, fields); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update staff member")
		return
	}

	go mq.Emit(r.Context(), "staff-edited", models.Index{EntityType: "staff", EntityId: id, Method: "PUT"})

	utils.SendResponse(w, http.StatusOK, fields, "Staff member updated", nil)
}

func DeleteStaff(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Members.Delete(ctx, id); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete staff member")
		return
	}

	go mq.Emit(r.Context(), "staff-deleted", models.Index{EntityType: "staff", EntityId: id, Method: "DELETE"})

	w.WriteHeader(http.StatusNoContent)
}

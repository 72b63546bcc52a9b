package filemgr

import (
	"fmt"
	"net/http"

	"atrium/utils"

	"github.com/julienschmidt/httprouter"
)

// Upload handles POST /api/uploads/:entity. The entity segment is the
// destination folder hint; the response carries the public URL the
// caller stores on its document. There is no delete path for replaced
// images.
func Upload(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entity := EntityType(ps.ByName("entity"))
	if !validEntity(entity) {
		utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("unsupported entity type: %s", entity))
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	url, err := SaveFormFile(r.MultipartForm, "file", entity, PicPhoto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("upload failed: %v", err))
		return
	}
	if url == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"url": url})
}

package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"atrium/db"
	"atrium/models"
	"atrium/mq"
	"atrium/store"
	"atrium/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var Accounts = store.New[models.Account](db.UsersCollection)

// provisionInput is the admin provisioning payload: identity fields plus
// a role and, for support users, the support desk they serve.
type provisionInput struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	SupportType string `json:"supportType"`
	Location    string `json:"location"`
}

func validateProvisionInput(in provisionInput) error {
	if in.Username == "" || in.DisplayName == "" || in.Email == "" || in.Password == "" {
		return errors.New("Username, Display Name, Email, and Password are required")
	}
	if in.Role == "support" && in.SupportType == "" {
		return errors.New("Support Type is required for support users")
	}
	return nil
}

// GetAccounts lists profiles; the users and sellers screens are the same
// collection filtered by role/supportType.
func GetAccounts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := store.NewQuery().SortAsc("username").Limit(200)
	if role := r.URL.Query().Get("role"); role != "" {
		q.Eq("role", role)
	}
	if st := r.URL.Query().Get("supportType"); st != "" {
		q.Eq("supportType", st)
	}

	accounts, err := Accounts.List(ctx, q)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch accounts")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	utils.RespondWithJSON(w, http.StatusOK, accounts)
}

// ProvisionAccount creates the credential record and its profile
// document in one document keyed by the assigned account id.
func ProvisionAccount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input provisionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validateProvisionInput(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := Accounts.List(ctx, store.NewQuery().Eq("email", input.Email).Limit(1))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check existing accounts")
		return
	}
	if len(existing) > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "An account with this email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	role := input.Role
	if role == "" {
		role = "user"
	}
	account := models.Account{
		Username:     input.Username,
		DisplayName:  input.DisplayName,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         role,
		Location:     input.Location,
	}
	if role == "support" {
		account.SupportType = input.SupportType
	}

	id, err := Accounts.Create(ctx, account)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}
	account.ID = id

	go mq.Emit(r.Context(), "account-created", models.Index{EntityType: "account", EntityId: id, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success":   true,
		"user":      account,
		"accountId": id,
	})
}

func EditAccount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := bson.M{}
	for _, key := range []string{"username", "displayName", "role", "supportType", "branchAssignedId", "preferredBranchId", "location"} {
		if v, ok := input[key].(string); ok && v != "" {
			fields[key] = v
		}
	}
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Accounts.Update(ctx, id, fields); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update account")
		return
	}

	go mq.Emit(r.Context(), "account-edited", models.Index{EntityType: "account", EntityId: id, Method: "PUT"})

	utils.SendResponse(w, http.StatusOK, fields, "Account updated", nil)
}

func DeleteAccount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Accounts.Delete(ctx, id); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	go mq.Emit(r.Context(), "account-deleted", models.Index{EntityType: "account", EntityId: id, Method: "DELETE"})

	w.WriteHeader(http.StatusNoContent)
}

package models

import "time"

// Room is a bookable room type at a branch. Quantity counts identical
// physical rooms available under this type.
type Room struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Capacity    int       `json:"capacity,omitempty" bson:"capacity,omitempty"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	Amenities   []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Images      []string  `json:"images,omitempty" bson:"images,omitempty"`
	BranchID    string    `json:"branchId" bson:"branchId"`
	Available   bool      `json:"available" bson:"available"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type StaffMember struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Department  string    `json:"department,omitempty" bson:"department,omitempty"`
	Position    string    `json:"position,omitempty" bson:"position,omitempty"`
	EmployeeID  string    `json:"employeeId,omitempty" bson:"employeeId,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	PhotoURL    string    `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Attendance holds one record per staff member per date. The store does
// not enforce that; the mark handler does the upsert by (staffId, date).
type Attendance struct {
	ID           string    `json:"id" bson:"id"`
	StaffID      string    `json:"staffId" bson:"staffId"`
	Date         string    `json:"date" bson:"date"` // YYYY-MM-DD
	Status       string    `json:"status" bson:"status"`
	CheckInTime  string    `json:"checkInTime,omitempty" bson:"checkInTime,omitempty"`
	CheckOutTime string    `json:"checkOutTime,omitempty" bson:"checkOutTime,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceLeave   = "leave"
)

type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
}

type Order struct {
	ID           string      `json:"id" bson:"id"`
	UserID       string      `json:"userId" bson:"userId"`
	BranchID     string      `json:"branchId" bson:"branchId"`
	OrderType    string      `json:"orderType" bson:"orderType"`
	Items        []OrderItem `json:"items" bson:"items"`
	CheckInDate  string      `json:"checkInDate,omitempty" bson:"checkInDate,omitempty"`
	NumberOfDays int         `json:"numberOfDays,omitempty" bson:"numberOfDays,omitempty"`
	TotalAmount  float64     `json:"totalAmount" bson:"totalAmount"`
	Status       string      `json:"status" bson:"status"`
	CreatedAt    time.Time   `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time   `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Order statuses
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderInProgress = "in_progress"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

type MinimartItem struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Available   bool      `json:"available" bson:"available"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type Service struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string    `json:"icon,omitempty" bson:"icon,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	BranchID    string    `json:"branchId" bson:"branchId"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type Activity struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Available   bool      `json:"available" bson:"available"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Account is a login-capable identity plus its profile document. Sellers
// and support staff live in the same collection, separated by role and
// supportType.
type Account struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	DisplayName  string    `json:"displayName" bson:"displayName"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	SupportType  string    `json:"supportType,omitempty" bson:"supportType,omitempty"`
	BranchID     string    `json:"branchAssignedId,omitempty" bson:"branchAssignedId,omitempty"`
	PreferredID  string    `json:"preferredBranchId,omitempty" bson:"preferredBranchId,omitempty"`
	Location     string    `json:"location,omitempty" bson:"location,omitempty"`
	LastLogin    time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Index is the payload for entity-change events on the audit channel.
type Index struct {
	EntityType string `json:"entity_type" bson:"entity_type"`
	Method     string `json:"method" bson:"method"`
	EntityId   string `json:"entity_id" bson:"entity_id"`
	ItemId     string `json:"item_id,omitempty" bson:"item_id,omitempty"`
	ItemType   string `json:"item_type,omitempty" bson:"item_type,omitempty"`
}

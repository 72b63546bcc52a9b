package routes

import (
	"net/http"

	"atrium/accounts"
	"atrium/activities"
	"atrium/attendance"
	"atrium/auth"
	"atrium/filemgr"
	"atrium/middleware"
	"atrium/minimart"
	"atrium/orders"
	"atrium/ratelim"
	"atrium/rooms"
	"atrium/services"
	"atrium/staff"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", ratelim.RateLimit(auth.Logout))
	router.GET("/api/auth/session", ratelim.RateLimit(auth.Session))
}

func AddRoomRoutes(router *httprouter.Router) {
	router.GET("/api/rooms", middleware.AdminOnly(rooms.GetRooms))
	router.GET("/api/rooms/:id", middleware.AdminOnly(rooms.GetRoom))
	router.POST("/api/rooms", middleware.AdminOnly(rooms.CreateRoom))
	router.PUT("/api/rooms/:id", middleware.AdminOnly(rooms.EditRoom))
	router.DELETE("/api/rooms/:id", middleware.AdminOnly(rooms.DeleteRoom))
}

func AddStaffRoutes(router *httprouter.Router) {
	router.GET("/api/staff", middleware.AdminOnly(staff.GetStaff))
	router.POST("/api/staff", middleware.AdminOnly(staff.CreateStaff))
	router.PUT("/api/staff/:id", middleware.AdminOnly(staff.EditStaff))
	router.DELETE("/api/staff/:id", middleware.AdminOnly(staff.DeleteStaff))

	router.GET("/api/staff/export/csv", middleware.AdminOnly(staff.ExportStaffCSV))
	router.GET("/api/staff/idcards/pdf", middleware.AdminOnly(staff.PrintIDCards))
}

func AddAttendanceRoutes(router *httprouter.Router) {
	router.GET("/api/attendance", middleware.AdminOnly(attendance.GetAttendance))
	router.POST("/api/attendance", middleware.AdminOnly(attendance.MarkAttendance))
	router.DELETE("/api/attendance/:id", middleware.AdminOnly(attendance.DeleteAttendance))

	router.GET("/api/attendance/report/pdf", middleware.AdminOnly(attendance.ReportPDF))
	router.GET("/api/attendance/report/csv", middleware.AdminOnly(attendance.ReportCSV))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.GET("/api/orders", middleware.AdminOnly(orders.GetOrders))
	router.GET("/api/orders/:id", middleware.AdminOnly(orders.GetOrder))
	router.PUT("/api/orders/:id/status", middleware.AdminOnly(orders.UpdateOrderStatus))
	router.DELETE("/api/orders/:id", middleware.AdminOnly(orders.DeleteOrder))
}

func AddMinimartRoutes(router *httprouter.Router) {
	router.GET("/api/minimart", middleware.AdminOnly(minimart.GetItems))
	router.POST("/api/minimart", middleware.AdminOnly(minimart.CreateItem))
	router.PUT("/api/minimart/:id", middleware.AdminOnly(minimart.EditItem))
	router.DELETE("/api/minimart/:id", middleware.AdminOnly(minimart.DeleteItem))
}

func AddServiceRoutes(router *httprouter.Router) {
	router.GET("/api/services", middleware.AdminOnly(services.GetServices))
	router.POST("/api/services", middleware.AdminOnly(services.CreateService))
	router.PUT("/api/services/:id", middleware.AdminOnly(services.EditService))
	router.DELETE("/api/services/:id", middleware.AdminOnly(services.DeleteService))
}

func AddActivityRoutes(router *httprouter.Router) {
	router.GET("/api/activities", middleware.AdminOnly(activities.GetActivities))
	router.POST("/api/activities", middleware.AdminOnly(activities.CreateActivity))
	router.PUT("/api/activities/:id", middleware.AdminOnly(activities.EditActivity))
	router.DELETE("/api/activities/:id", middleware.AdminOnly(activities.DeleteActivity))
}

func AddAccountRoutes(router *httprouter.Router) {
	router.GET("/api/accounts", middleware.AdminOnly(accounts.GetAccounts))
	router.POST("/api/accounts", ratelim.RateLimit(middleware.AdminOnly(accounts.ProvisionAccount)))
	router.PUT("/api/accounts/:id", middleware.AdminOnly(accounts.EditAccount))
	router.DELETE("/api/accounts/:id", middleware.AdminOnly(accounts.DeleteAccount))
}

func AddUploadRoutes(router *httprouter.Router) {
	router.POST("/api/uploads/:entity", middleware.AdminOnly(filemgr.Upload))
}

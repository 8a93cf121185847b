// file: internals/features/kost/rooms/route/room_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomController "kostku_backend/internals/features/kost/rooms/controller"
)

func RoomRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &roomController.RoomController{DB: db}

	r.Get("/rooms", ctl.ListRooms)
	r.Post("/rooms", ctl.CreateRoom)
	r.Get("/rooms/:id", ctl.GetRoom)
	r.Put("/rooms/:id", ctl.UpdateRoom)
	r.Delete("/rooms/:id", ctl.DeleteRoom)
}

package filemgr

import "errors"

type EntityType string
type PictureType string

const (
	EntityRoom     EntityType = "room"
	EntityStaff    EntityType = "staff"
	EntityMinimart EntityType = "minimart"
	EntityService  EntityType = "service"
	EntityActivity EntityType = "activity"
	EntityUser     EntityType = "user"

	PicPhoto   PictureType = "photo"
	PicGallery PictureType = "gallery"
	PicThumb   PictureType = "thumb"
)

var (
	AllowedExtensions = map[PictureType][]string{
		PicPhoto:   {".jpg", ".jpeg", ".png", ".gif", ".webp"},
		PicGallery: {".jpg", ".jpeg", ".png", ".gif", ".webp"},
		PicThumb:   {".jpg"},
	}

	AllowedMIMEs = map[PictureType][]string{
		PicPhoto:   {"image/jpeg", "image/png", "image/gif", "image/webp"},
		PicGallery: {"image/jpeg", "image/png", "image/gif", "image/webp"},
		PicThumb:   {"image/jpeg"},
	}

	PictureSubfolders = map[PictureType]string{
		PicPhoto:   "photo",
		PicGallery: "gallery",
		PicThumb:   "thumb",
	}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

func validEntity(entity EntityType) bool {
	switch entity {
	case EntityRoom, EntityStaff, EntityMinimart, EntityService, EntityActivity, EntityUser:
		return true
	default:
		return false
	}
}

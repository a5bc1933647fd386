package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringList is stored as a JSON array column.
type StringList []string

func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		sl = StringList{}
	}
	data, err := json.Marshal(sl)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (sl *StringList) Scan(value interface{}) error {
	if value == nil {
		*sl = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported string list column type %T", value)
	}
	if len(data) == 0 {
		*sl = StringList{}
		return nil
	}
	return json.Unmarshal(data, sl)
}

type ResourceFolder struct {
	gorm.Model
	ParentID  *uint  `json:"parent_id"`
	OwnerID   uint   `json:"owner_id" gorm:"index;not null"`
	Name      string `json:"name"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

// ResourceFile is an uploaded media file. UsageReferences holds the lesson
// ids whose blocks point at the file; it is informational only and is not
// pruned when a referencing block is edited or deleted.
type ResourceFile struct {
	gorm.Model
	UploaderID      uint       `json:"uploader_id" gorm:"index;not null"`
	ParentID        *uint      `json:"parent_id"`
	Name            string     `json:"name"`
	MimeType        string     `json:"type"`
	Size            int64      `json:"size"`
	URL             string     `json:"url"`
	UsageReferences StringList `json:"usage_references" gorm:"type:text"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
}

package api

import (
	"github.com/segmentio/ksuid"

	"github.com/ssargent/catbuffer/pkg/archive"
	"github.com/ssargent/catbuffer/pkg/entity"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Details *ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail locates a decode failure in the submitted payload
type ErrorDetail struct {
	Kind   string `json:"kind"`
	Offset *int   `json:"offset,omitempty"`
}

// DecodeRequest is the JSON form of a payload submission
type DecodeRequest struct {
	Hex string `json:"hex"`
}

// KindInfo describes one decodable entity kind
type KindInfo struct {
	Name  string `json:"name"`
	Value uint8  `json:"value"`
}

// StoredResponse is returned after an entity is archived
type StoredResponse struct {
	ID   string      `json:"id"`
	Kind entity.Kind `json:"kind"`
	Size int         `json:"size"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind        string
	Port        int
	APIKey      string        // Empty disables authentication
	MaxBodySize int64         // Largest accepted request body in bytes
	Policy      entity.Policy // Checks applied to every decode
}

// EntityArchive defines the archive operations the API serves
type EntityArchive interface {
	Put(kind entity.Kind, payload []byte) (ksuid.KSUID, error)
	Get(id ksuid.KSUID) (*archive.Item, error)
	List(opts archive.ListOptions) ([]*archive.Item, error)
	Delete(id ksuid.KSUID) error
}

package database

import (
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/shared/audit"
)

const (
	createdByField  = "created_by"
	modifiedByField = "modified_by"
)

// RegisterAuditCallbacks stamps created_by and modified_by on every model
// that has those columns, using the actor carried by the statement context.
func RegisterAuditCallbacks(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").Register("audit:stamp_create", stampCreate); err != nil {
		return fmt.Errorf("failed to register audit create callback: %w", err)
	}
	if err := db.Callback().Update().Before("gorm:update").Register("audit:stamp_update", stampUpdate); err != nil {
		return fmt.Errorf("failed to register audit update callback: %w", err)
	}
	return nil
}

func stampCreate(tx *gorm.DB) {
	stmt := tx.Statement
	if stmt.Schema == nil {
		return
	}
	actor, ok := audit.ActorFrom(stmt.Context)
	if !ok {
		return
	}

	for _, name := range []string{createdByField, modifiedByField} {
		field := stmt.Schema.LookUpField(name)
		if field == nil {
			continue
		}
		eachRow(stmt.ReflectValue, func(row reflect.Value) {
			if _, zero := field.ValueOf(stmt.Context, row); zero {
				id := actor
				stmt.AddError(field.Set(stmt.Context, row, &id))
			}
		})
	}
}

func stampUpdate(tx *gorm.DB) {
	stmt := tx.Statement
	if stmt.Schema == nil || stmt.Schema.LookUpField(modifiedByField) == nil {
		return
	}
	actor, ok := audit.ActorFrom(stmt.Context)
	if !ok {
		return
	}
	id := actor
	stmt.SetColumn(modifiedByField, &id, true)
}

func eachRow(rv reflect.Value, fn func(reflect.Value)) {
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			row := rv.Index(i)
			for row.Kind() == reflect.Ptr {
				row = row.Elem()
			}
			if row.Kind() == reflect.Struct {
				fn(row)
			}
		}
	case reflect.Struct:
		fn(rv)
	}
}

package settingsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Get() (rec *dbmodels.Setting, err error)
	Save(rec dbmodels.Setting) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Get() (*dbmodels.Setting, error) {
	rec := dbmodels.Setting{}
	err := i.db.
		Order("created_at ASC").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Save keeps the settings a singleton: the first call inserts the row,
// later calls update it in place.
func (i impl) Save(rec dbmodels.Setting) error {
	current, err := i.Get()
	if err != nil {
		return err
	}
	if current != nil {
		rec.BaseModel = current.BaseModel
	}
	return i.db.
		Save(&rec).
		Error
}

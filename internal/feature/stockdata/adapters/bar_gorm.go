package adapters

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_api/internal/feature/stockdata/domain/entity"
	"stock_api/internal/feature/stockdata/usecase"
)

type barGorm struct {
	db *gorm.DB
}

var _ usecase.BarRepository = (*barGorm)(nil)

func NewBarRepository(db *gorm.DB) *barGorm {
	return &barGorm{db: db}
}

type StockDataModel struct {
	ID       uint      `gorm:"primaryKey"`
	Datetime time.Time `gorm:"not null;uniqueIndex:stock_data_datetime"`

	Open   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	High   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Low    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Close  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Volume int64           `gorm:"not null;default:0"`
}

func (StockDataModel) TableName() string {
	return "stock_data"
}

func toModel(e entity.PriceBar) StockDataModel {
	return StockDataModel{
		Datetime: e.Datetime,
		Open:     e.Open,
		High:     e.High,
		Low:      e.Low,
		Close:    e.Close,
		Volume:   e.Volume,
	}
}

func toEntity(m StockDataModel) entity.PriceBar {
	return entity.PriceBar{
		Datetime: m.Datetime,
		Open:     m.Open,
		High:     m.High,
		Low:      m.Low,
		Close:    m.Close,
		Volume:   m.Volume,
	}
}

// InsertIgnoreDuplicate は datetime をコンフリクト対象とした
// INSERT ... ON CONFLICT DO NOTHING を発行します。
// 戻り値は実際に挿入されたかどうかです（重複時は false）。
func (r *barGorm) InsertIgnoreDuplicate(ctx context.Context, bar entity.PriceBar) (bool, error) {
	m := toModel(bar)
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "datetime"}},
		DoNothing: true,
	}).Create(&m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindAllAscending は保存済みの全バーを datetime 昇順で返します。
func (r *barGorm) FindAllAscending(ctx context.Context) ([]entity.PriceBar, error) {
	var rows []StockDataModel
	if err := r.db.WithContext(ctx).Order("datetime ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.PriceBar, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

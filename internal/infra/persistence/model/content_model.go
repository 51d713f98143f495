package model

import "time"

// ArtworkModel mirrors the 'artworks' table.
type ArtworkModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"column:image_url;type:text"`
	Category    string `gorm:"type:varchar(100);index"`
	Featured    bool
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtworkModel) TableName() string {
	return "artworks"
}

// TestimonialModel mirrors the 'testimonials' table.
type TestimonialModel struct {
	ID        uint   `gorm:"primaryKey"`
	Author    string `gorm:"type:varchar(100);not null"`
	Quote     string `gorm:"type:text;not null"`
	Company   string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// SkillModel mirrors the 'skills' table.
type SkillModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"type:varchar(100);not null"`
	Level int
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}

// BannerModel mirrors the 'banners' table.
type BannerModel struct {
	ID       uint   `gorm:"primaryKey"`
	ImageURL string `gorm:"column:image_url;type:text"`
	LinkURL  string `gorm:"column:link_url;type:text"`
	Position string `gorm:"type:varchar(50)"`
	Active   bool   `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BannerModel) TableName() string {
	return "banners"
}

// FooterConfigModel mirrors the single-row 'footer_config' table.
type FooterConfigModel struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FooterConfigModel) TableName() string {
	return "footer_config"
}

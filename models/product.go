package models

import "math"

// Product categories as stored in the catalog.
const (
	CategorySarees     = "Sarees"
	CategoryEarrings   = "Earrings"
	CategoryNeckpieces = "Neckpieces"
	CategoryRings      = "Rings"
	CategoryNosePins   = "Nose Pins"
	CategoryAnklets    = "Anklets"
	CategoryLehenga    = "Lehenga"
)

// Product is a catalog entry. Price is the final selling price; Discount is a
// percentage kept only so the struck-through original price can be shown.
type Product struct {
	ProductID        string   `json:"id" bson:"_id"`
	Name             string   `json:"name" bson:"name"`
	Code             string   `json:"code" bson:"code"`
	Category         string   `json:"category" bson:"category"`
	ShortDescription string   `json:"shortDescription" bson:"shortDescription"`
	LongDescription  string   `json:"longDescription" bson:"longDescription"`
	Price            float64  `json:"price" bson:"price"`
	Discount         float64  `json:"discount" bson:"discount"`
	Material         string   `json:"material" bson:"material"`
	DeliveryTimeline string   `json:"deliveryTimeline" bson:"deliveryTimeline"`
	ShowOnHomepage   bool     `json:"showOnHomepage" bson:"showOnHomepage"`
	Images           []string `json:"images" bson:"images"`
	Rating           float64  `json:"rating" bson:"rating"`
	DeliveryDate     string   `json:"deliveryDate" bson:"deliveryDate"`
	Buy2Get1Eligible bool     `json:"buy2get1Eligible" bson:"buy2get1Eligible"`
	ViewsCount       int64    `json:"viewsCount" bson:"viewsCount"`
	WhatsappClicks   int64    `json:"whatsappClicks" bson:"whatsappClicks"`
	IsSoldOut        bool     `json:"isSoldOut" bson:"isSoldOut"`
	FastSelling      bool     `json:"fastSelling,omitempty" bson:"fastSelling,omitempty"`
	Trending         bool     `json:"trending,omitempty" bson:"trending,omitempty"`
	LimitedStock     bool     `json:"limitedStock,omitempty" bson:"limitedStock,omitempty"`
	CreatedAt        int64    `json:"createdAt" bson:"createdAt"`
}

// OriginalPrice reconstructs the pre-discount price for display. The catalog
// never stores it; price = round(original * (1 - discount/100)).
func (p Product) OriginalPrice() float64 {
	if p.Discount <= 0 || p.Discount >= 100 {
		return p.Price
	}
	return math.Round(p.Price / (1 - p.Discount/100))
}

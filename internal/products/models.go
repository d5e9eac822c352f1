package products

// Product is the read-only projection of a document in the products
// collection. The document _id is never exposed.
type Product struct {
	Name     string  `json:"name" bson:"name" description:"Product name"`
	Category string  `json:"category" bson:"category" description:"Product category"`
	Price    float64 `json:"price" bson:"price" description:"Unit price"`
	ImageURL string  `json:"image_url" bson:"image_url" description:"Product image URL"`
}

type RecommendationRequest struct {
	SearchQuery string `json:"search_query" description:"Keyword matched against product names (case-insensitive)"`
}

type RecommendationResponse struct {
	Message         string    `json:"message,omitempty" description:"Set when nothing matched"`
	Recommendations []Product `json:"recommendations" description:"At most 10 matching products"`
}

// NoMatchesMessage is returned alongside an empty recommendation list.
const NoMatchesMessage = "Không tìm thấy sản phẩm phù hợp"

// NewRecommendationResponse wraps a lookup result. An empty result becomes an
// empty list plus NoMatchesMessage.
func NewRecommendationResponse(found []Product) RecommendationResponse {
	if len(found) == 0 {
		return RecommendationResponse{
			Message:         NoMatchesMessage,
			Recommendations: []Product{},
		}
	}
	return RecommendationResponse{Recommendations: found}
}

package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/middleware"
	"github.com/phantuanthanh1582000/backend-ai-final/internal/products"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/classify_image").
			To(handler.ClassifyImage).
			Consumes("multipart/form-data").
			Doc("Classify a product image with MobileNet").
			Metadata(restfulspec.KeyOpenAPITags, []string{"image"}).
			Param(ws.FormParameter(uploadField, "Image file (JPEG, PNG, GIF, BMP, TIFF, WebP)").DataType("file").Required(true)).
			Writes(ClassifyResponse{}).
			Returns(200, "OK", ClassifyResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(413, "Upload Too Large", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/analyze_review").
			To(handler.AnalyzeReview).
			Doc("Analyze the sentiment of a customer review").
			Metadata(restfulspec.KeyOpenAPITags, []string{"review"}).
			Reads(ReviewRequest{}).
			Writes(ReviewResponse{}).
			Returns(200, "OK", ReviewResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/recommend_products").
			To(handler.RecommendProducts).
			Doc("Find products whose name contains the search keyword").
			Metadata(restfulspec.KeyOpenAPITags, []string{"products"}).
			Reads(products.RecommendationRequest{}).
			Writes(products.RecommendationResponse{}).
			Returns(200, "OK", products.RecommendationResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

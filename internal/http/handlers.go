package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"tienda/internal/service"
	"tienda/pkg/logger"
)

type Server struct {
	engine  *gin.Engine
	catalog *service.CatalogService
	carts   *service.CartService
}

func NewServer(catalog *service.CatalogService, carts *service.CartService, log *zap.Logger) *Server {
	r := gin.New()
	r.Use(logger.RequestLogger(log), gin.Recovery())
	s := &Server{engine: r, catalog: catalog, carts: carts}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		products := api.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":pid", s.getProduct)
		products.POST("", s.createProduct)
		products.PUT(":pid", s.updateProduct)
		products.DELETE(":pid", s.deleteProduct)

		carts := api.Group("/carts")
		carts.POST("", s.createCart)
		carts.GET("", s.listCarts)
		carts.GET(":cid", s.getCart)
		carts.POST(":cid/product/:pid", s.addCartItem)
		carts.PUT(":cid/product/:pid", s.setCartItemQuantity)
		carts.DELETE(":cid/product/:pid", s.removeCartItem)
		carts.DELETE(":cid", s.deleteCart)
	}
}

// Product handlers
type createProductReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Stock       int64    `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

// updateProductReq — поля-указатели, чтобы отличать отсутствующее поле
// от нулевого значения; id в теле игнорируется
type updateProductReq struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Code        *string   `json:"code"`
	Price       *float64  `json:"price"`
	Stock       *int64    `json:"stock"`
	Category    *string   `json:"category"`
	Status      *bool     `json:"status"`
	Thumbnails  *[]string `json:"thumbnails"`
}

// @Summary List products
// @Tags products
// @Produce json
// @Param limit query int false "Max items to return"
// @Success 200 {array} domain.Product
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	list, err := s.catalog.List(c, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param pid path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Router /products/{pid} [get]
func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.GetByID(c, c.Param("pid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param input body createProductReq true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	p, err := s.catalog.Create(c, service.NewProduct{
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Thumbnails:  req.Thumbnails,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param pid path string true "Product ID"
// @Param input body updateProductReq true "Fields to overwrite"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{pid} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var req updateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	p, err := s.catalog.Update(c, c.Param("pid"), service.ProductPatch{
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Status:      req.Status,
		Thumbnails:  req.Thumbnails,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Param pid path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{pid} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalog.Remove(c, c.Param("pid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// Cart handlers
type quantityReq struct {
	Quantity int64 `json:"quantity"`
}

// @Summary Create cart
// @Tags carts
// @Produce json
// @Success 201 {object} domain.Cart
// @Router /carts [post]
func (s *Server) createCart(c *gin.Context) {
	cart, err := s.carts.Create(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

// @Summary List carts
// @Tags carts
// @Produce json
// @Success 200 {array} domain.Cart
// @Failure 404 {object} map[string]string
// @Router /carts [get]
func (s *Server) listCarts(c *gin.Context) {
	list, err := s.carts.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get cart by id
// @Tags carts
// @Produce json
// @Param cid path string true "Cart ID"
// @Success 200 {object} domain.Cart
// @Failure 404 {object} map[string]string
// @Router /carts/{cid} [get]
func (s *Server) getCart(c *gin.Context) {
	cart, err := s.carts.GetByID(c, c.Param("cid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// @Summary Add product to cart
// @Tags carts
// @Accept json
// @Produce json
// @Param cid path string true "Cart ID"
// @Param pid path string true "Product ID"
// @Param input body quantityReq true "Quantity"
// @Success 201 {object} domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{cid}/product/{pid} [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req quantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	cart, err := s.carts.AddItem(c, c.Param("cid"), c.Param("pid"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

// @Summary Set item quantity
// @Tags carts
// @Accept json
// @Produce json
// @Param cid path string true "Cart ID"
// @Param pid path string true "Product ID"
// @Param input body quantityReq true "Quantity"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{cid}/product/{pid} [put]
func (s *Server) setCartItemQuantity(c *gin.Context) {
	var req quantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	cart, err := s.carts.SetItemQuantity(c, c.Param("cid"), c.Param("pid"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quantity updated", "cart": cart})
}

// @Summary Remove product from cart
// @Tags carts
// @Produce json
// @Param cid path string true "Cart ID"
// @Param pid path string true "Product ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /carts/{cid}/product/{pid} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	cart, err := s.carts.RemoveItem(c, c.Param("cid"), c.Param("pid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product removed from cart", "cart": cart})
}

// @Summary Delete cart
// @Tags carts
// @Produce json
// @Param cid path string true "Cart ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{cid} [delete]
func (s *Server) deleteCart(c *gin.Context) {
	if err := s.carts.Remove(c, c.Param("cid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart deleted"})
}

func mapErrorToStatus(err error) int {
	switch err {
	case service.ErrMissingFields, service.ErrInvalidQuantity:
		return http.StatusBadRequest
	case service.ErrProductNotFound, service.ErrCartNotFound,
		service.ErrItemNotFound, service.ErrNoCarts:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError: 400/404 отдают {message}, всё остальное — 500 {error}
func respondError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

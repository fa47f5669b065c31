package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"catalog-backend/internal/model"
	"catalog-backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// statusClientClosedRequest is reported when the caller went away mid-request.
const statusClientClosedRequest = 499

// Handler maps each route to exactly one store call.
type Handler struct {
	products store.ProductStore
	users    store.UserStore
}

func NewHandler(products store.ProductStore, users store.UserStore) *Handler {
	return &Handler{
		products: products,
		users:    users,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Health)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.POST("/products", h.CreateProduct)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)

	r.GET("/users", h.ListUsers)
	r.POST("/users", h.CreateUser)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "server is running")
}

// ----- Products -----

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context(), c.Query("userEmail"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct answers null rather than 404 when the id matches nothing.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req model.ProductInput
	if err := bindBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.products.CreateProduct(c.Request.Context(), req.Product())
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("new product %s (request %s)", res.InsertedID.Hex(), requestID(c))
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	if _, err := store.ParseID(id); err != nil {
		respondError(c, err)
		return
	}

	var req model.ProductInput
	if err := bindBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.products.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	res, err := h.products.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ----- Users -----

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req model.User
	if err := bindBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// bindBody decodes the JSON body with numbers kept as json.Number, so integers
// reach the store unchanged, then runs gin's validator. An empty body binds
// as an empty object.
func bindBody(c *gin.Context, obj any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}

// respondError maps store errors to statuses. Details only go to the log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
	case errors.Is(err, store.ErrCanceled):
		c.AbortWithStatus(statusClientClosedRequest)
	case errors.Is(err, store.ErrUnavailable):
		log.Printf("request %s: %v", requestID(c), err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		log.Printf("request %s: %v", requestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

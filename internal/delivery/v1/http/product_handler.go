package http

import (
	"net/http"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	registration usecase.ProductRegistrationUC
	search       usecase.ProductSearchUC
	logger       logger.Logger
}

func NewProductHandler(registration usecase.ProductRegistrationUC, search usecase.ProductSearchUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{registration: registration, search: search, logger: logger}
}

// searchProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает страницу товаров. Сортировка: sort=field,asc|desc (можно повторять)
//	@Tags			products
//	@Produce		json
//	@Param			page	query		int		false	"Номер страницы, с нуля"
//	@Param			size	query		int		false	"Размер страницы (по умолчанию 20, максимум 2000)"
//	@Param			sort	query		string	false	"Поле и направление, например name,desc"
//	@Success		200		{object}	ProductPage
//	@Failure		400		{object}	ErrorResponse	"Некорректный запрос страницы"
//	@Router			/product [get]
func (h *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	page, err := h.search.Search(r.Context(), req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, page)
}

// searchProductByID
//
//	@Summary	Поиск товара по id
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор товара"
//	@Success	200	{object}	domain.Product
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/product/{id} [get]
func (h *ProductHandler) searchProductByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.search.SearchByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// isProductRegistered
//
//	@Summary	Проверка регистрации товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор товара"
//	@Success	200	{boolean}	boolean
//	@Router		/product/isRegistered/{id} [get]
func (h *ProductHandler) isProductRegistered(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, h.search.IsRegistered(r.Context(), chi.URLParam(r, "id")))
}

// searchProductByCode
//
//	@Summary	Поиск товара по коду
//	@Tags		products
//	@Produce	json
//	@Param		code	path		string	true	"Код товара"
//	@Success	200	{object}	domain.Product
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/product/code/{code} [get]
func (h *ProductHandler) searchProductByCode(w http.ResponseWriter, r *http.Request) {
	product, err := h.search.SearchByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// registerProduct
//
//	@Summary		Регистрация товара
//	@Description	Создаёт товар. id из тела запроса игнорируется
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		domain.Product	true	"Товар"
//	@Success		200		{object}	domain.Product
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Код уже зарегистрирован"
//	@Router			/product [post]
func (h *ProductHandler) registerProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.decodeProduct(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.registration.Register(r.Context(), product)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Infof("product registered: id=%s", created.ID)
	WriteSuccess(w, http.StatusOK, created)
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Description	Ищет товар по коду из тела и заменяет остальные поля. id сохраняется
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		domain.Product	true	"Товар"
//	@Success		200		{object}	domain.Product
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/product [put]
func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.decodeProduct(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.registration.Update(r.Context(), product)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, updated)
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Produce	plain
//	@Param		id	path		string	true	"Идентификатор товара"
//	@Success	200	{string}	string	"Successfully deleted"
//	@Router		/product/{id} [delete]
func (h *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.registration.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(w, err)
		return
	}

	WriteText(w, http.StatusOK, deletedMessage)
}

func (h *ProductHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (*domain.Product, error) {
	var product domain.Product
	if err := decodeBody(w, r, &product); err != nil {
		return nil, err
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return &product, nil
}

// ProductPage описывает страницу товаров для документации.
type ProductPage = usecase.Page[domain.Product]

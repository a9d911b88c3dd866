package http

import (
	"net/http"

	"github.com/DRSN-tech/online-sales/internal/domain"
	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ClientHandler struct {
	registration usecase.ClientRegistrationUC
	search       usecase.ClientSearchUC
	logger       logger.Logger
}

func NewClientHandler(registration usecase.ClientRegistrationUC, search usecase.ClientSearchUC, logger logger.Logger) *ClientHandler {
	return &ClientHandler{registration: registration, search: search, logger: logger}
}

// searchClients
//
//	@Summary		Список клиентов
//	@Description	Возвращает страницу клиентов. Сортировка: sort=field,asc|desc (можно повторять)
//	@Tags			clients
//	@Produce		json
//	@Param			page	query		int		false	"Номер страницы, с нуля"
//	@Param			size	query		int		false	"Размер страницы (по умолчанию 20, максимум 2000)"
//	@Param			sort	query		string	false	"Поле и направление, например name,desc"
//	@Success		200		{object}	ClientPage
//	@Failure		400		{object}	ErrorResponse	"Некорректный запрос страницы"
//	@Router			/client [get]
func (h *ClientHandler) searchClients(w http.ResponseWriter, r *http.Request) {
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

// searchClientByID
//
//	@Summary	Поиск клиента по id
//	@Tags		clients
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор клиента"
//	@Success	200	{object}	domain.Client
//	@Failure	404	{object}	ErrorResponse	"Клиент не найден"
//	@Router		/client/{id} [get]
func (h *ClientHandler) searchClientByID(w http.ResponseWriter, r *http.Request) {
	client, err := h.search.SearchByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, client)
}

// isClientRegistered
//
//	@Summary	Проверка регистрации клиента
//	@Tags		clients
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор клиента"
//	@Success	200	{boolean}	boolean
//	@Router		/client/isRegistered/{id} [get]
func (h *ClientHandler) isClientRegistered(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, h.search.IsRegistered(r.Context(), chi.URLParam(r, "id")))
}

// searchClientByCPF
//
//	@Summary	Поиск клиента по CPF
//	@Tags		clients
//	@Produce	json
//	@Param		cpf	path		string	true	"CPF клиента"
//	@Success	200	{object}	domain.Client
//	@Failure	404	{object}	ErrorResponse	"Клиент не найден"
//	@Router		/client/cpf/{cpf} [get]
func (h *ClientHandler) searchClientByCPF(w http.ResponseWriter, r *http.Request) {
	client, err := h.search.SearchByCPF(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, client)
}

// registerClient
//
//	@Summary		Регистрация клиента
//	@Description	Создаёт клиента. id из тела запроса игнорируется
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Param			client	body		domain.Client	true	"Клиент"
//	@Success		200		{object}	domain.Client
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"CPF или email уже зарегистрирован"
//	@Router			/client [post]
func (h *ClientHandler) registerClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.decodeClient(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.registration.Register(r.Context(), client)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Infof("client registered: id=%s", created.ID)
	WriteSuccess(w, http.StatusOK, created)
}

// updateClient
//
//	@Summary		Обновление клиента
//	@Description	Ищет клиента по CPF из тела и заменяет остальные поля. id сохраняется
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Param			client	body		domain.Client	true	"Клиент"
//	@Success		200		{object}	domain.Client
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Клиент не найден"
//	@Failure		409		{object}	ErrorResponse	"Email уже занят"
//	@Router			/client [put]
func (h *ClientHandler) updateClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.decodeClient(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.registration.Update(r.Context(), client)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, updated)
}

// deleteClient
//
//	@Summary	Удаление клиента
//	@Tags		clients
//	@Produce	plain
//	@Param		id	path		string	true	"Идентификатор клиента"
//	@Success	200	{string}	string	"Successfully deleted"
//	@Router		/client/{id} [delete]
func (h *ClientHandler) deleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.registration.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(w, err)
		return
	}

	WriteText(w, http.StatusOK, deletedMessage)
}

func (h *ClientHandler) decodeClient(w http.ResponseWriter, r *http.Request) (*domain.Client, error) {
	var client domain.Client
	if err := decodeBody(w, r, &client); err != nil {
		return nil, err
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return &client, nil
}

// ClientPage описывает страницу клиентов для документации.
type ClientPage = usecase.Page[domain.Client]

package media

import (
	"net/http"

	"larkspur/infras/otel"
	"larkspur/internal/domains/media/model"
	"larkspur/internal/domains/media/model/dto"
	"larkspur/internal/domains/media/service"
	"larkspur/shared/constant"
	gDto "larkspur/shared/dto"
	"larkspur/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/media", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadMedia)
		routerGroup.Get("/", handler.GetMedia)
		routerGroup.Get("/{id}", handler.GetMediaByID)
		routerGroup.Delete("/{id}", handler.DeleteMedia)
	})
}

// UploadMedia handles media file upload to S3.
// @Summary Upload a media file
// @Description Upload an image file to S3 and register it in the media library.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file to upload"
// @Success 201 {object} dto.MediaResponse "Media uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media [post]
// @Security BearerAuth
func (handler *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadMedia")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadMediaRequest{
		File:       fileHeader,
		FileReader: file,
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload media")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Media uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMedia retrieves all media assets based on query parameters.
// @Summary Get all media assets
// @Description Retrieve all media assets with optional filtering and pagination.
// @Tags Media
// @Accept json
// @Produce json
// @Param file_name query string false "Filter by file name"
// @Param content_type query string false "Filter by content type"
// @Success 200 {object} dto.GetMediaResponse "List of media assets"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media [get]
func (handler *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMedia")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if fileName := r.URL.Query().Get(model.FieldFileName); fileName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFileName,
			Operator: gDto.FilterOperatorLike,
			Value:    fileName,
			Table:    model.TableName,
		})
	}

	if contentType := r.URL.Query().Get(model.FieldContentType); contentType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldContentType,
			Operator: gDto.FilterOperatorEq,
			Value:    contentType,
			Table:    model.TableName,
		})
	}

	media, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get media assets")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Media assets retrieved successfully")

	response.WithJSON(w, http.StatusOK, media)
}

// GetMediaByID retrieves a media asset by its ID.
// @Summary Get a media asset by ID
// @Description Retrieve a media asset by its unique identifier.
// @Tags Media
// @Accept json
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} dto.MediaResponse "Media asset details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/{id} [get]
func (handler *Handler) GetMediaByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMediaByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	media, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get media by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Media asset retrieved successfully")

	response.WithJSON(w, http.StatusOK, media)
}

// DeleteMedia deletes a media asset by its ID.
// @Summary Delete a media asset by ID
// @Description Delete a media asset and its backing object in S3.
// @Tags Media
// @Accept json
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} response.Message "Media deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMedia")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete media")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Media deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Media deleted successfully")
}

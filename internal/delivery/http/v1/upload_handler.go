package v1

import (
	"io"
	"net/http"

	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes bounds a single multipart request (all files combined).
const maxUploadBytes = 32 << 20 // 32 MB

type UploadHandler struct {
	ingestUC domain.IngestUsecase
}

func NewUploadHandler(protected *gin.RouterGroup, ingestUC domain.IngestUsecase) {
	handler := &UploadHandler{ingestUC: ingestUC}

	protected.POST("/candidates/uploads", handler.Upload)
}

// Upload godoc
// @Summary      Upload resumes
// @Description  Accepts one or more resume files and creates PENDING candidates. A failed text extraction never aborts the batch.
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        files   formData  file    true   "Resume files"
// @Param        job_id  formData  string  false  "Target pool (defaults to the general pool)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates/uploads [post]
// @Security     BearerAuth
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		c.Error(apperror.BadRequest("Invalid multipart payload: " + err.Error()))
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.Error(apperror.BadRequest("No files provided"))
		return
	}

	files := make([]domain.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			c.Error(apperror.BadRequest("Could not read file: " + fh.Filename))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.Error(apperror.BadRequest("Could not read file: " + fh.Filename))
			return
		}

		files = append(files, domain.UploadedFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	jobID := c.PostForm("job_id")
	candidates, err := h.ingestUC.Upload(c.Request.Context(), jobID, files)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resumes uploaded", candidates)
}

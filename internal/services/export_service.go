package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"agencia_backend/internal/models"
	"agencia_backend/internal/repositories"
	"agencia_backend/internal/services/dto"
	"agencia_backend/pkg/apperrors"
)

// exportHeader is the fixed column set of the admin CSV export, in the order
// the back office expects.
var exportHeader = []string{
	"ID",
	"Nombre Artístico",
	"Nombre Real",
	"Email",
	"Estado",
	"Destacada",
	"Ubicación",
	"Nacionalidad",
	"Altura (cm)",
	"Peso (kg)",
	"Color Ojos",
	"Color Cabello",
	"Tono Piel",
	"Medidas",
	"Talla Zapato",
	"Experiencia",
	"Especialidades",
	"Disponibilidad",
	"Idiomas",
	"Instagram",
	"Twitter",
	"TikTok",
	"Vistas",
	"Total Fotos",
	"Creado",
	"Aprobado",
}

const exportDateLayout = "02/01/2006"

// ExportResult is a ready-to-send attachment.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

type ExportService interface {
	Export(query *dto.ExportQuery) (*ExportResult, error)
}

type ExportServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewExportService(profileRepo repositories.ProfileRepository) ExportService {
	return &ExportServiceImpl{profileRepo: profileRepo}
}

// Export dumps the full filtered profile set, ignoring pagination. The
// filename carries the export date so repeated downloads do not clobber each
// other.
func (s *ExportServiceImpl) Export(query *dto.ExportQuery) (*ExportResult, error) {
	profiles, err := s.profileRepo.ListAll(query.StatusOrAll(), query.FeaturedFilter())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	date := time.Now().Format("2006-01-02")

	switch query.Format {
	case "json":
		data, err := s.renderJSON(profiles)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &ExportResult{
			Data:        data,
			ContentType: "application/json",
			Filename:    fmt.Sprintf("modelos_%s.json", date),
		}, nil
	default:
		data, err := s.renderCSV(profiles)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &ExportResult{
			Data:        data,
			ContentType: "text/csv; charset=utf-8",
			Filename:    fmt.Sprintf("modelos_%s.csv", date),
		}, nil
	}
}

// renderCSV writes a UTF-8 BOM first so Excel detects the encoding of the
// accented headers.
func (s *ExportServiceImpl) renderCSV(profiles []models.Profile) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for i := range profiles {
		if err := w.Write(exportRow(&profiles[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(p *models.Profile) []string {
	name, email := "", ""
	if p.User != nil {
		name = p.User.Name
		email = p.User.Email
	}

	featured := "No"
	if p.Featured {
		featured = "Sí"
	}

	approvedAt := ""
	if p.ApprovedAt != nil {
		approvedAt = p.ApprovedAt.Format(exportDateLayout)
	}

	return []string{
		p.ID,
		p.ArtisticName,
		name,
		email,
		string(p.Status),
		featured,
		p.Location,
		p.Nationality,
		intOrEmpty(p.HeightCM),
		intOrEmpty(p.WeightKG),
		p.EyeColor,
		p.HairColor,
		p.SkinTone,
		p.Measurements,
		p.ShoeSize,
		p.Experience,
		strings.Join(p.Specialties, ", "),
		p.Availability,
		strings.Join(p.Languages, ", "),
		p.Instagram,
		p.Twitter,
		p.TikTok,
		strconv.Itoa(p.Views),
		strconv.Itoa(len(p.Photos)),
		p.CreatedAt.Format(exportDateLayout),
		approvedAt,
	}
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// renderJSON pretty-prints the admin view of each profile; an empty set
// serializes as [] rather than null.
func (s *ExportServiceImpl) renderJSON(profiles []models.Profile) ([]byte, error) {
	items := make([]*dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, dto.NewProfileResponse(&profiles[i]))
	}
	return json.MarshalIndent(items, "", "  ")
}

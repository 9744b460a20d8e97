package handler

import (
	"strconv"

	"github.com/alexacafe/pos-api/internal/application/service"
	"github.com/alexacafe/pos-api/internal/domain/enum"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/request"
	"github.com/alexacafe/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles sales-report HTTP requests
type ReportHandler struct {
	reportService  *service.ReportService
	exportService  *service.ExportService
	receiptService *service.ReceiptService
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	reportService *service.ReportService,
	exportService *service.ExportService,
	receiptService *service.ReceiptService,
) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		exportService:  exportService,
		receiptService: receiptService,
	}
}

// Sales returns the aggregated sales report for a granularity, with the
// trend series, best sellers and summary figures the dashboard shows.
func (h *ReportHandler) Sales(c *gin.Context) {
	g, err := enum.ParseGranularity(c.Query("granularity"))
	if err != nil {
		response.BadRequest(c, "Unknown granularity, use daily, weekly or monthly")
		return
	}

	data, err := h.reportService.AggregateHistory(c.Request.Context(), g)
	if err != nil {
		response.Error(c, err)
		return
	}

	buckets := make(map[string]*service.SalesBucket, data.Len())
	for _, key := range data.Keys() {
		buckets[key] = data.Bucket(key)
	}

	history := h.receiptService.List(c.Request.Context())
	totalRevenue := service.TotalRevenue(data)

	response.OK(c, "Sales report generated successfully", gin.H{
		"granularity":       g,
		"keys":              data.Keys(),
		"buckets":           buckets,
		"trend":             service.Trend(data, 7),
		"bestSellers":       service.BestSellers(data, 5),
		"totalRevenue":      totalRevenue,
		"averageOrderValue": service.AverageOrderValue(totalRevenue, len(history)),
	})
}

// Export renders the purchase history as a downloadable CSV or text report
func (h *ReportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "txt" {
		response.BadRequest(c, "Unknown format, use csv or txt")
		return
	}

	history := h.receiptService.List(c.Request.Context())
	revenue := service.Revenue(history)

	var content string
	var err error
	if format == "csv" {
		content, err = h.exportService.ToCSV(history, revenue)
	} else {
		content, err = h.exportService.ToText(history, revenue)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	fileName := h.exportService.FileName(format)
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(fileName))
	c.Data(200, "text/plain; charset=utf-8", []byte(content))
}

// Import parses an exported CSV and appends its records to history
func (h *ReportHandler) Import(c *gin.Context) {
	var req request.ImportCSVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	imported, err := h.exportService.ImportCSV(c.Request.Context(), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Data imported successfully", gin.H{
		"imported": len(imported),
		"records":  imported,
	})
}

package database

import (
	"github.com/emrerecber/exportiq360/internal/logger"
	"github.com/emrerecber/exportiq360/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedQuestions inserts the standard question bank when the table is
// empty. IDs are stable so reseeding never duplicates rows.
func SeedQuestions(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	questions := defaultQuestionBank()
	if err := db.Create(&questions).Error; err != nil {
		return err
	}
	log.Info("seeded question bank", "count", len(questions))
	return nil
}

func defaultQuestionBank() []models.Question {
	all := datatypes.JSONSlice[string]{models.ChannelEcommerce, models.ChannelEExport, models.ChannelCombined}
	domestic := datatypes.JSONSlice[string]{models.ChannelEcommerce, models.ChannelCombined}
	export := datatypes.JSONSlice[string]{models.ChannelEExport, models.ChannelCombined}

	return []models.Question{
		{
			ID:          "q-strategy-01",
			TextTR:      "Dijital satış kanallarınız için yazılı bir strateji ve yıllık hedefleriniz var mı?",
			TextEN:      "Do you have a written strategy and annual targets for your digital sales channels?",
			Category:    models.CategoryStrategy,
			Channels:    all,
			IsFreeTrial: true,
			OrderNum:    1,
			IsActive:    true,
		},
		{
			ID:       "q-strategy-02",
			TextTR:   "Hedef pazarlarınızı veri ve pazar araştırmasına dayanarak mı seçiyorsunuz?",
			TextEN:   "Do you select your target markets based on data and market research?",
			Category: models.CategoryStrategy,
			Channels: export,
			OrderNum: 2,
			IsActive: true,
		},
		{
			ID:       "q-strategy-03",
			TextTR:   "Rakiplerinizin dijital kanallardaki konumunu düzenli olarak analiz ediyor musunuz?",
			TextEN:   "Do you regularly analyze your competitors' positioning in digital channels?",
			Category: models.CategoryStrategy,
			Channels: all,
			OrderNum: 3,
			IsActive: true,
		},
		{
			ID:       "q-strategy-04",
			TextTR:   "E-ihracat için ayrılmış bir bütçeniz ve sorumlu bir ekibiniz var mı?",
			TextEN:   "Do you have a dedicated budget and a responsible team for e-export?",
			Category: models.CategoryStrategy,
			Channels: export,
			OrderNum: 4,
			IsActive: true,
		},
		{
			ID:          "q-tech-01",
			TextTR:      "E-ticaret altyapınız (site veya pazaryeri mağazanız) mobil uyumlu ve hızlı mı?",
			TextEN:      "Is your e-commerce infrastructure (site or marketplace store) mobile friendly and fast?",
			Category:    models.CategoryTech,
			Channels:    all,
			IsFreeTrial: true,
			OrderNum:    5,
			IsActive:    true,
		},
		{
			ID:       "q-tech-02",
			TextTR:   "Siparişlerinizi ve stoklarınızı yöneten entegre bir sistem (ERP/OMS) kullanıyor musunuz?",
			TextEN:   "Do you use an integrated system (ERP/OMS) to manage your orders and inventory?",
			Category: models.CategoryTech,
			Channels: all,
			OrderNum: 6,
			IsActive: true,
		},
		{
			ID:       "q-tech-03",
			TextTR:   "Sitenizde çoklu dil, çoklu para birimi ve yerel ödeme yöntemleri destekleniyor mu?",
			TextEN:   "Does your site support multiple languages, currencies and local payment methods?",
			Category: models.CategoryTech,
			Channels: export,
			OrderNum: 7,
			IsActive: true,
		},
		{
			ID:       "q-tech-04",
			TextTR:   "Güvenlik sertifikaları ve KVKK/GDPR uyumluluğu konusunda düzenli denetim yapıyor musunuz?",
			TextEN:   "Do you regularly audit security certificates and KVKK/GDPR compliance?",
			Category: models.CategoryTech,
			Channels: all,
			OrderNum: 8,
			IsActive: true,
		},
		{
			ID:          "q-marketing-01",
			TextTR:      "Dijital pazarlama kampanyalarınızı (arama, sosyal medya) düzenli olarak yürütüyor musunuz?",
			TextEN:      "Do you run digital marketing campaigns (search, social media) on a regular basis?",
			Category:    models.CategoryMarketing,
			Channels:    all,
			IsFreeTrial: true,
			OrderNum:    9,
			IsActive:    true,
		},
		{
			ID:       "q-marketing-02",
			TextTR:   "Hedef pazarların diline ve kültürüne uyarlanmış içerik üretiyor musunuz?",
			TextEN:   "Do you produce content localized to the language and culture of your target markets?",
			Category: models.CategoryMarketing,
			Channels: export,
			OrderNum: 10,
			IsActive: true,
		},
		{
			ID:       "q-marketing-03",
			TextTR:   "Müşteri yorumlarını ve marka itibarınızı dijital kanallarda yönetiyor musunuz?",
			TextEN:   "Do you manage customer reviews and brand reputation across digital channels?",
			Category: models.CategoryMarketing,
			Channels: domestic,
			OrderNum: 11,
			IsActive: true,
		},
		{
			ID:       "q-marketing-04",
			TextTR:   "E-posta ve sadakat programları ile tekrar satın alma oranını artırıyor musunuz?",
			TextEN:   "Do you grow repeat purchase rates with email and loyalty programs?",
			Category: models.CategoryMarketing,
			Channels: domestic,
			OrderNum: 12,
			IsActive: true,
		},
		{
			ID:          "q-logistics-01",
			TextTR:      "Siparişleriniz için ortalama teslimat süresini ölçüyor ve iyileştiriyor musunuz?",
			TextEN:      "Do you measure and improve the average delivery time of your orders?",
			Category:    models.CategoryLogistics,
			Channels:    all,
			IsFreeTrial: true,
			OrderNum:    13,
			IsActive:    true,
		},
		{
			ID:       "q-logistics-02",
			TextTR:   "Uluslararası gönderiler için gümrük ve iade süreçleriniz tanımlı mı?",
			TextEN:   "Are your customs and return processes defined for international shipments?",
			Category: models.CategoryLogistics,
			Channels: export,
			OrderNum: 14,
			IsActive: true,
		},
		{
			ID:       "q-logistics-03",
			TextTR:   "Birden fazla kargo ve fulfillment sağlayıcısı ile çalışıyor musunuz?",
			TextEN:   "Do you work with multiple carriers and fulfillment providers?",
			Category: models.CategoryLogistics,
			Channels: all,
			OrderNum: 15,
			IsActive: true,
		},
		{
			ID:       "q-logistics-04",
			TextTR:   "Hedef pazarlarda yerel depo veya mikro-fulfillment kullanıyor musunuz?",
			TextEN:   "Do you use local warehouses or micro-fulfillment in your target markets?",
			Category: models.CategoryLogistics,
			Channels: export,
			OrderNum: 16,
			IsActive: true,
		},
		{
			ID:          "q-analytics-01",
			TextTR:      "Satış ve trafik verilerinizi düzenli raporlarla takip ediyor musunuz?",
			TextEN:      "Do you track your sales and traffic data with regular reports?",
			Category:    models.CategoryAnalytics,
			Channels:    all,
			IsFreeTrial: true,
			OrderNum:    17,
			IsActive:    true,
		},
		{
			ID:       "q-analytics-02",
			TextTR:   "Fiyatlandırma ve kampanya kararlarınızı veri analizine dayandırıyor musunuz?",
			TextEN:   "Do you base pricing and campaign decisions on data analysis?",
			Category: models.CategoryAnalytics,
			Channels: all,
			OrderNum: 18,
			IsActive: true,
		},
		{
			ID:       "q-analytics-03",
			TextTR:   "Pazar bazında kârlılığı ve müşteri edinme maliyetini ölçüyor musunuz?",
			TextEN:   "Do you measure per-market profitability and customer acquisition cost?",
			Category: models.CategoryAnalytics,
			Channels: export,
			OrderNum: 19,
			IsActive: true,
		},
		{
			ID:       "q-analytics-04",
			TextTR:   "Müşteri davranışını analiz edip kişiselleştirme için kullanıyor musunuz?",
			TextEN:   "Do you analyze customer behaviour and use it for personalization?",
			Category: models.CategoryAnalytics,
			Channels: domestic,
			OrderNum: 20,
			IsActive: true,
		},
	}
}

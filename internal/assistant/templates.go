package assistant

// Именованные плейсхолдеры в шаблонах ответов. Остаются в тексте как есть:
// пользователь заполняет их вручную, ассистент их не подставляет.
const (
	PlaceholderLocation  = "[Location]"
	PlaceholderDate      = "[Date]"
	PlaceholderAuthority = "[Authority Name]"
	PlaceholderYourName  = "[Your Name]"
)

// Greeting - первая реплика ассистента в новом диалоге
const Greeting = "Hello! I'm Aqua AI, your digital water guardian. I can help you understand pollution metrics, draft complaint messages, explain safety measures, and answer questions about water quality. How can I assist you today?"

// QuickActions - подсказки для первого сообщения пользователя
var QuickActions = []string{
	"Explain my area's pollution level",
	"Draft a complaint email",
	"What safety measures should I take?",
	"How do I read the metrics?",
}

const pollutionLevelResponse = "Based on recent data, pollution levels vary across regions. I can see from our latest reports that areas with high plastic density (70+) require immediate attention. Would you like me to analyze a specific location? Just provide the coordinates or location name."

const complaintResponse = `Here's a template you can use:

Subject: Urgent: Pollution Report at [Location]

Dear [Authority Name],

I am writing to report a pollution incident observed at [Location, Coordinates]. On [Date], I noticed [describe what you saw - plastic accumulation, oil spill, sewage discharge, etc.].

This poses a serious risk to [water quality/marine life/public health]. I have documented the incident with photographs and submitted a report through AquaSentinel (Report ID: [if available]).

I kindly request immediate investigation and appropriate action to address this issue.

Thank you for your attention to this matter.

Sincerely,
[Your Name]

Would you like me to customize this for a specific organization?`

const safetyResponse = `For personal safety around polluted water:

1. Avoid direct contact with visibly contaminated water
2. Use certified water filters for drinking water
3. Wash hands thoroughly if contact occurs
4. Keep children and pets away from polluted areas
5. Report any suspicious discharge immediately

For specific guidance based on pollution type (chemical, oil, sewage, plastic), which would you like to know more about?`

const metricsResponse = `Let me explain our key metrics:

• Plastic Density Index (0-100): Measures plastic particle concentration. 0-30 is Low, 30-50 is Moderate, 50-70 is High, 70+ is Critical.

• Water Clarity: Visual assessment - Clear (minimal contamination), Moderate (visible particles), Poor (significant pollution).

• Microplastic Count: Particles per cubic meter of water.

• Pollution Trend: Rising (getting worse), Stable (unchanged), Declining (improving).

Which metric would you like more details about?`

const reportingResponse = `To submit a pollution report:

1. Go to the Community Reporting Hub
2. Your GPS location will auto-populate (or manually enter coordinates)
3. Select pollution category (Plastic, Chemical, Oil, Sewage)
4. Describe what you observed
5. Estimate plastic density and water clarity
6. Submit (anonymous reporting is available)

Your report helps authorities respond faster and builds our community database. Every report matters!`

const predictionResponse = `Our AI prediction system analyzes:

• Weather patterns (rainfall increases plastic runoff)
• Waste hotspot proximity
• Historical pollution trends
• Seasonal factors

Check the AI Insights section for risk forecasts in different regions. We update predictions daily based on new data. Would you like me to explain a specific prediction?`

const fallbackResponse = `I'm here to help you understand pollution data and take action. I can:

• Summarize pollution reports for any location
• Explain complex metrics in simple terms
• Draft complaint messages to authorities
• Suggest personal safety actions
• Guide you through using AquaSentinel features

What would you like to know more about?`

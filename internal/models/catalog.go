package models

// Product is a single entry in the AI Lab catalogue. The catalogue is static
// reference data: it is rendered on the ai-lab page and never mutated at
// runtime.
type Product struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Tech     string `yaml:"tech"`
	Desc     string `yaml:"desc"`
}

// DefaultCatalog returns the built-in product list. A deployment can replace
// it with a catalog.yaml file; see config.LoadCatalog.
func DefaultCatalog() []Product {
	return []Product{
		// Health & biotech
		{ID: 1, Name: "DexaGen AI", Category: "Pharmacology", Price: "KSh 85,000", Tech: "DeepChem, WebGL", Desc: "Neuro-Symbolic engine simulating 3D drug interactions and molecular analysis."},
		{ID: 19, Name: "SMART HEALTH AI", Category: "Healthcare", Price: "KSh 95,000", Tech: "Scikit-learn, IoT", Desc: "Predicts malaria-prone regions via mosquito species tracking and doctor connectivity."},
		{ID: 20, Name: "Reen AI", Category: "EdTech / Science", Price: "KSh 40,000", Tech: "3D Rendering, Flask", Desc: "Interactive biochemistry tool for visualizing drug molecules and pharmacology data."},

		// Agri-tech
		{ID: 6, Name: "Agritech Field Manager", Category: "Agri-Tech", Price: "KSh 60,000", Tech: "Django, Plotly", Desc: "Lab-to-field experiment tracking with advanced data ingestion for agronomists."},
		{ID: 11, Name: "Plant Pathology AI", Category: "Agri-Tech", Price: "KSh 55,000", Tech: "PyTorch, IoT", Desc: "Disease detection system with voice navigation for hands-free field use."},
		{ID: 12, Name: "InsectAI", Category: "Agri-Tech", Price: "KSh 50,000", Tech: "TensorFlow, Audio", Desc: "Intelligent insect detection using sound analysis and environmental sensors."},
		{ID: 13, Name: "Poli AI", Category: "Agri-Tech", Price: "KSh 45,000", Tech: "Computer Vision", Desc: "Automated poultry management and health surveillance system."},
		{ID: 14, Name: "ANIPRO AI", Category: "FinTech / Agri", Price: "KSh 70,000", Tech: "Predictive Models", Desc: "Derisking platform connecting small-scale farmers to insurance providers."},

		// Security & surveillance
		{ID: 3, Name: "Usherbot Biometric", Category: "Security", Price: "KSh 75,000", Tech: "ONNX, Docker", Desc: "High-security fingerprint pipeline with embedding extraction and audit logs."},
		{ID: 17, Name: "KWS AI", Category: "Surveillance", Price: "KSh 80,000", Tech: "Computer Vision", Desc: "Wildlife park surveillance for early detection of poachers and abnormal conditions."},
		{ID: 10, Name: "AI Traffic Manager", Category: "Smart City", Price: "KSh 90,000", Tech: "YOLO, IoT", Desc: "Automated traffic flow optimization with voice assistance for navigation."},

		// Business & utility
		{ID: 2, Name: "ScriptureAI", Category: "NLP", Price: "KSh 45,000", Tech: "Vector DB, RAG", Desc: "Semantic search engine for theological texts using Vector Embeddings."},
		{ID: 15, Name: "BKING", Category: "FinTech", Price: "KSh 120,000", Tech: "Banking Algorithms", Desc: "Intelligent banking system for credit facilities and insurers."},
		{ID: 4, Name: "Attendance Dashboard", Category: "Management", Price: "KSh 35,000", Tech: "Redis, WebSockets", Desc: "Real-time logs, summaries, and scheduled PDF reporting."},
		{ID: 7, Name: "Enterprise Chatbot", Category: "AI Services", Price: "KSh 30,000", Tech: "NLP, Firebase", Desc: "Automated support, bulk email/SMS handling, and E-Learning assistance."},
		{ID: 16, Name: "FREEZE AI", Category: "IoT", Price: "KSh 40,000", Tech: "Sensors, Flask", Desc: "Smart refrigerator maintenance system for early food spoilage detection."},

		// Consumer apps
		{ID: 8, Name: "Eco-Ride", Category: "Environment", Price: "KSh 50,000", Tech: "React Native", Desc: "Carbon footprint tracking and climate change mitigation app."},
		{ID: 22, Name: "MIRA AI", Category: "GenAI", Price: "KSh 55,000", Tech: "Weather API, LLMs", Desc: "Weather-aware learning assistant adapting study focus to the environment."},
		{ID: 5, Name: "Digital Assistant", Category: "Productivity", Price: "KSh 25,000", Tech: "Voice API", Desc: "Personal assistant for scheduling, reminders, and task management."},
	}
}

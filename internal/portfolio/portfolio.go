// Package portfolio holds the static site content served to the
// front-end: the project showcase and the experience timeline.
package portfolio

type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GithubURL   string   `json:"githubUrl"`
}

type Experience struct {
	ID      int      `json:"id"`
	Year    string   `json:"year"`
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Logo    string   `json:"logo,omitempty"`
	Desc    string   `json:"desc"`
	Tech    []string `json:"tech"`
}

// Projects returns the project showcase in display order.
func Projects() []Project {
	return projects
}

// Timeline returns the experience timeline, most recent first.
func Timeline() []Experience {
	return experiences
}

var projects = []Project{
	{
		ID:          1,
		Title:       "Iris Segmentation",
		Description: "Xây dựng mô hình phân đoạn hình ảnh (Segmentation) để nhận diện và phân đoạn vùng mống mắt từ ảnh NIR chụp mắt sử dụng kiến trúc U-Net, triển khai trên Jetson Nano.",
		Tech:        []string{"PyTorch", "OpenCV"},
		GithubURL:   "https://github.com/phungtienthanh/Iris-Segmentation",
	},
	{
		ID:          2,
		Title:       "Road Segmentation for Aerial Images",
		Description: "Xây dựng các mô hình phân đoạn hình ảnh (Segmentation) để nhận diện đường giao thông từ ảnh vệ tinh, ứng dụng kiến trúc U-Net tối ưu.",
		Tech:        []string{"PyTorch", "OpenCV", "Albumentations"},
		GithubURL:   "https://github.com/phungtienthanh/RoadSegmentationforAerialImages",
	},
	{
		ID:          3,
		Title:       "Automatic License Plate Recognition",
		Description: "Xây dựng engine nhận diện biển số xe tự động sử dụng YOLOv8, kết hợp với OpenCV và PaddleOCR để xử lý ảnh và trích xuất thông tin biển số.",
		Tech:        []string{"YOLO", "PaddleOCR", "OpenCV"},
		GithubURL:   "https://github.com/phungtienthanh/Automatic-License-Plate-Recognition",
	},
	{
		ID:          4,
		Title:       "Traffic Sign Recognition",
		Description: "Xây dựng mô hình phân loại biển báo giao thông (Classification) sử dụng ResNet-18.",
		Tech:        []string{"PyTorch", "OpenCV"},
		GithubURL:   "https://github.com/phungtienthanh/Traffic-Sign-Recognition",
	},
	{
		ID:          5,
		Title:       "Real-time Weather Analytics Pipeline",
		Description: "Dự án tập trung xây dựng một pipeline xử lý dữ liệu lớn để thu thập, xử lý, và phân tích dữ liệu thời tiết thực tế từ 20 thành phố lớn, được thiết kế theo kiến trúc Lambda.",
		Tech:        []string{"Kafka", "Spark", "Hadoop", "MongoDB", "Kubernetes"},
		GithubURL:   "https://github.com/quoctrieu123/-2025_1-Big-Data-Project",
	},
	{
		ID:          6,
		Title:       "Online Shoes Website",
		Description: "Xây dựng website bán giày trực tuyến sử dụng Django, cung cấp giao diện thân thiện và chức năng quản lý người dùng, sản phẩm hiệu quả.",
		Tech:        []string{"Django", "SQLite"},
		GithubURL:   "https://github.com/leminhhaii/System-architecture-analysis-project",
	},
}

var experiences = []Experience{
	{
		ID:      1,
		Year:    "OCTOBER 2025 - PRESENT",
		Title:   "AI Engineer",
		Company: "VTI",
		Logo:    "/vti.jpg",
		Desc:    "Tập trung phát triển các giải pháp Computer Vision trong môi trường Outsource. Triển khai các kiến trúc SOTA cho bài toán Classification, Object Detection, Image Segmentation và nhận diện hành vi, đáp ứng tiêu chuẩn khắt khe từ các đối tác khu vực Châu Á Thái Bình Dương.",
		Tech:    []string{"PyTorch", "Paddle", "OpenCV", "YOLO", "RT-DETR", "ByteTrack"},
	},
	{
		ID:      2,
		Year:    "SEP 2024 - DEC 2024",
		Title:   "Data Analyst Intern",
		Company: "Rikkei Digital",
		Logo:    "/Logo-Rikkei.png",
		Desc:    "Phân tích tập dữ liệu lớn để trích xuất Insight hỗ trợ quá trình đưa ra quyết định kinh doanh. Tối ưu hóa quy trình xử lý dữ liệu và xây dựng các báo cáo trực quan hóa tự động.",
		Tech:    []string{"SQL", "Pandas", "Power BI"},
	},
}

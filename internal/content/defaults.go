// Package content holds the hard-coded fallback data served when a public
// collection is still empty.  A fresh deployment renders a fully populated
// marketing site before anyone touches the admin panel; as soon as real
// records exist they take over.
package content

import "github.com/trinesolutions/website-backend/internal/model"

// DefaultServices returns the stock service offerings.
func DefaultServices() []model.Service {
	return []model.Service{
		{
			ID:           "1",
			Title:        "Digital Transformation",
			Description:  "Transform your business with cutting-edge digital solutions that drive innovation and efficiency.",
			Icon:         "Zap",
			Capabilities: []string{"Enterprise Architecture", "Process Automation", "Digital Strategy", "Change Management"},
			Tools:        []string{"Cloud Platforms", "AI/ML", "IoT", "Blockchain"},
		},
		{
			ID:           "2",
			Title:        "Cybersecurity",
			Description:  "Protect your enterprise with comprehensive security solutions and risk management strategies.",
			Icon:         "Shield",
			Capabilities: []string{"Security Assessment", "Threat Intelligence", "Incident Response", "Compliance Management"},
			Tools:        []string{"SIEM", "Penetration Testing", "Security Operations Center", "Identity Management"},
		},
		{
			ID:           "3",
			Title:        "Cloud & DevOps",
			Description:  "Accelerate delivery with modern cloud infrastructure and DevOps best practices.",
			Icon:         "Cloud",
			Capabilities: []string{"Cloud Migration", "Infrastructure as Code", "CI/CD Pipelines", "Container Orchestration"},
			Tools:        []string{"AWS", "Azure", "GCP", "Kubernetes", "Terraform"},
		},
		{
			ID:           "4",
			Title:        "Data Analytics & AI",
			Description:  "Unlock insights from your data with advanced analytics and artificial intelligence solutions.",
			Icon:         "BarChart3",
			Capabilities: []string{"Data Warehousing", "Machine Learning", "Predictive Analytics", "Business Intelligence"},
			Tools:        []string{"Python", "TensorFlow", "Tableau", "Power BI", "Snowflake"},
		},
		{
			ID:           "5",
			Title:        "Risk & Compliance",
			Description:  "Navigate regulatory landscapes with expert risk management and compliance solutions.",
			Icon:         "FileCheck",
			Capabilities: []string{"Regulatory Compliance", "Risk Assessment", "Audit Support", "Policy Development"},
			Tools:        []string{"GRC Platforms", "Audit Tools", "Compliance Management Systems"},
		},
		{
			ID:           "6",
			Title:        "Managed IT Services",
			Description:  "Focus on your business while we manage your IT infrastructure and support needs.",
			Icon:         "Wrench",
			Capabilities: []string{"24/7 Support", "Infrastructure Management", "Service Desk", "Performance Monitoring"},
			Tools:        []string{"Monitoring Tools", "Service Management", "Remote Support", "Asset Management"},
		},
	}
}

// DefaultCaseStudies returns the stock success stories.
func DefaultCaseStudies() []model.CaseStudy {
	return []model.CaseStudy{
		{
			ID:           "1",
			Title:        "Global Bank Digital Transformation",
			Industry:     "Banking",
			Challenge:    "Legacy systems hindering digital innovation and customer experience",
			Solution:     "Implemented cloud-native architecture with microservices and AI-powered customer insights",
			Results:      "40% reduction in processing time, 65% increase in customer satisfaction, $12M annual savings",
			Image:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800",
			Technologies: []string{"AWS", "Kubernetes", "React", "Python", "TensorFlow"},
		},
		{
			ID:           "2",
			Title:        "Healthcare Data Security Overhaul",
			Industry:     "Healthcare",
			Challenge:    "Protecting sensitive patient data while ensuring HIPAA compliance",
			Solution:     "Deployed zero-trust security architecture with advanced encryption and monitoring",
			Results:      "100% compliance achievement, Zero security breaches, 30% reduction in security incidents",
			Image:        "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=800",
			Technologies: []string{"Azure", "Security Operations Center", "Identity Management", "Encryption"},
		},
		{
			ID:           "3",
			Title:        "Retail Supply Chain Optimization",
			Industry:     "Retail",
			Challenge:    "Inefficient inventory management leading to stockouts and excess inventory",
			Solution:     "AI-powered predictive analytics and real-time inventory tracking system",
			Results:      "25% reduction in inventory costs, 50% decrease in stockouts, 35% improvement in forecast accuracy",
			Image:        "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800",
			Technologies: []string{"Machine Learning", "IoT", "Real-time Analytics", "Cloud Integration"},
		},
	}
}

// DefaultBlogPosts returns the stock insights articles.
func DefaultBlogPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			ID:       "1",
			Slug:     "the-future-of-enterprise-ai-trends-shaping-2025",
			Title:    "The Future of Enterprise AI: Trends Shaping 2025",
			Excerpt:  "Explore how artificial intelligence is revolutionizing enterprise operations and what to expect in the coming years.",
			Image:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
			Date:     "2025-01-15",
			Author:   "Dr. Sarah Chen",
			Category: "AI & Innovation",
		},
		{
			ID:       "2",
			Slug:     "zero-trust-security-a-comprehensive-guide",
			Title:    "Zero Trust Security: A Comprehensive Guide",
			Excerpt:  "Learn how zero trust architecture is becoming essential for modern cybersecurity strategies.",
			Image:    "https://images.unsplash.com/photo-1563986768609-322da13575f3?w=800",
			Date:     "2025-01-10",
			Author:   "Michael Rodriguez",
			Category: "Cybersecurity",
		},
		{
			ID:       "3",
			Slug:     "cloud-migration-best-practices-for-2025",
			Title:    "Cloud Migration Best Practices for 2025",
			Excerpt:  "Navigate the complexities of cloud migration with our expert insights and proven strategies.",
			Image:    "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?w=800",
			Date:     "2025-01-05",
			Author:   "Emily Watson",
			Category: "Cloud Computing",
		},
		{
			ID:       "4",
			Slug:     "data-privacy-regulations-what-your-business-needs-to-know",
			Title:    "Data Privacy Regulations: What Your Business Needs to Know",
			Excerpt:  "Stay compliant with evolving data privacy regulations across different jurisdictions.",
			Image:    "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?w=800",
			Date:     "2024-12-28",
			Author:   "James Park",
			Category: "Compliance",
		},
	}
}

// DefaultTeam returns the stock leadership bios.
func DefaultTeam() []model.TeamMember {
	return []model.TeamMember{
		{
			ID:       "1",
			Name:     "John Anderson",
			Position: "Chief Executive Officer",
			Bio:      "20+ years leading digital transformation initiatives for Fortune 500 companies.",
			Image:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=400",
		},
		{
			ID:       "2",
			Name:     "Dr. Sarah Chen",
			Position: "Chief Technology Officer",
			Bio:      "Former tech lead at major cloud providers, specializing in AI and distributed systems.",
			Image:    "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400",
		},
		{
			ID:       "3",
			Name:     "Michael Rodriguez",
			Position: "Head of Cybersecurity",
			Bio:      "Certified ethical hacker with expertise in enterprise security architecture.",
			Image:    "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=400",
		},
		{
			ID:       "4",
			Name:     "Emily Watson",
			Position: "Director of Cloud Solutions",
			Bio:      "Cloud architect with deep expertise in AWS, Azure, and GCP implementations.",
			Image:    "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400",
		},
	}
}

// DefaultTestimonials returns the stock client quotes.
func DefaultTestimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID:      "1",
			Name:    "Rebecca Lawson",
			Role:    "VP of Engineering",
			Company: "Meridian Financial",
			Content: "Their team delivered our cloud migration three weeks ahead of schedule with zero downtime. Exceptional partners.",
			Rating:  5,
		},
		{
			ID:      "2",
			Name:    "David Okafor",
			Role:    "Chief Information Officer",
			Company: "Northline Health",
			Content: "The security overhaul they led became the blueprint for our entire compliance program.",
			Rating:  5,
		},
		{
			ID:      "3",
			Name:    "Priya Raman",
			Role:    "Director of Operations",
			Company: "Corewave Retail",
			Content: "From the first workshop to go-live, communication was clear and the results spoke for themselves.",
			Rating:  4,
		},
	}
}
